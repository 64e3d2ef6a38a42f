package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	cmd := Setup()

	require.NotNil(t, cmd)
	assert.Equal(t, "setup", cmd.Use)
	assert.Contains(t, cmd.Long, "searched by name first")
	assert.NotNil(t, cmd.RunE)
}

func TestSetup_Flags(t *testing.T) {
	cmd := Setup()

	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"config", "c", ""},
		{"non-interactive", "", "false"},
		{"format", "", "json"},
		{"output", "o", ""},
		{"no-theme", "", "false"},
		{"strict", "", "false"},
		{"wait", "", "0s"},
		{"tui", "", "false"},
		{"log-format", "", "text"},
		{"teardown", "", "ask"},
		{"publish-bucket", "", ""},
		{"publish-key", "", ""},
		{"s3-endpoint", "", ""},
		{"s3-region", "", ""},
		{"s3-path-style", "", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag, "flag %s should exist", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.def, flag.DefValue)
		})
	}
}
