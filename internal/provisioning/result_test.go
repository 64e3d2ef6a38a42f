package provisioning

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/imamik/fusionboot/internal/platform/fusionauth"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want StepStatus
	}{
		{"transport", &fusionauth.TransportError{Method: "POST", Path: "/api/tenant", Err: errors.New("refused")}, StepAborted},
		{"wrapped transport", fmt.Errorf("search: %w", &fusionauth.TransportError{Err: errors.New("eof")}), StepAborted},
		{"canceled", fmt.Errorf("x: %w", context.Canceled), StepAborted},
		{"deadline", context.DeadlineExceeded, StepAborted},
		{"api error", &fusionauth.APIError{StatusCode: 400}, StepUnresolved},
		{"missing id", fusionauth.ErrMissingID, StepUnresolved},
		{"ambiguous", fusionauth.ErrAmbiguous, StepUnresolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Classify(tt.err)
			assert.Equal(t, tt.want, res.Status)
			assert.ErrorIs(t, res.Err, tt.err)
		})
	}
}

func TestUnresolved_NilReason(t *testing.T) {
	t.Parallel()
	res := Unresolved(nil)
	assert.ErrorIs(t, res.Err, ErrNotResolved)
}

func TestStepStatus_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "resolved", StepResolved.String())
	assert.Equal(t, "unresolved", StepUnresolved.String())
	assert.Equal(t, "aborted", StepAborted.String())
	assert.Equal(t, "StepStatus(9)", StepStatus(9).String())
}

func TestReport_Step(t *testing.T) {
	t.Parallel()
	r := &Report{}
	r.add("tenant", Resolved("t1", true), 0)

	step, ok := r.Step("tenant")
	assert.True(t, ok)
	assert.Equal(t, "t1", step.Result.ID)

	_, ok = r.Step("theme")
	assert.False(t, ok)
}
