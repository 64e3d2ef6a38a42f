package handlers

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/fusionboot/internal/provisioning"
)

func TestPrintReport(t *testing.T) {
	report := &provisioning.Report{Steps: []provisioning.StepReport{
		{Phase: "tenant", Result: provisioning.Resolved("t-1", true)},
		{Phase: "signing-key", Result: provisioning.Resolved("k-1", false)},
		{Phase: "theme", Result: provisioning.Unresolved(errors.New("theme copy rejected"))},
	}}

	var buf bytes.Buffer
	printReport(&buf, "setup", "demo", report)
	out := buf.String()

	assert.Contains(t, out, "fusionboot setup: demo")
	assert.Contains(t, out, "t-1 (created)")
	assert.Contains(t, out, "k-1")
	assert.NotContains(t, out, "k-1 (created)")
	assert.Contains(t, out, "theme copy rejected")
	assert.Contains(t, out, report.Summary())
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, "setup", "demo", nil)
	assert.Empty(t, buf.String())
}
