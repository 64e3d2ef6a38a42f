package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAppName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "iron-pixel", nil},
		{"single char", "a", nil},
		{"digits", "app2", nil},
		{"empty", "", ErrAppNameRequired},
		{"blank", "   ", ErrAppNameRequired},
		{"uppercase", "IronPixel", nil},
		{"underscore", "iron_pixel", nil},
		{"inner space", "Iron Pixel", nil},
		{"long", "a123456789012345678901234567890123456789012345678", nil},
		{"leading space", " app", ErrAppNameInvalid},
		{"trailing newline", "app\n", ErrAppNameInvalid},
		{"control character", "ir\x00on", ErrAppNameInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAppName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	valid := []string{"", "http://localhost:9011", "https://auth.example.com", "http://10.0.0.1:9011/"}
	for _, v := range valid {
		assert.NoError(t, ValidateEndpoint(v), v)
	}

	invalid := []string{"localhost:9011", "ftp://example.com", "http://", "://bad"}
	for _, v := range invalid {
		assert.ErrorIs(t, ValidateEndpoint(v), ErrEndpointInvalid, v)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail(""))
	assert.NoError(t, ValidateEmail("admin@example.com"))
	assert.ErrorIs(t, ValidateEmail("admin"), ErrEmailInvalid)
	assert.ErrorIs(t, ValidateEmail("@example.com"), ErrEmailInvalid)
	assert.ErrorIs(t, ValidateEmail("admin@"), ErrEmailInvalid)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{AppName: "iron-pixel"}
		cfg.ApplyDefaults()
		return cfg
	}

	require.NoError(t, valid().Validate())

	t.Run("mixed case app name", func(t *testing.T) {
		cfg := &Config{AppName: "IronPixel"}
		cfg.ApplyDefaults()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "admin@IronPixel.com", cfg.AdminEmail)
	})

	t.Run("missing app name", func(t *testing.T) {
		cfg := valid()
		cfg.AppName = ""
		assert.ErrorIs(t, cfg.Validate(), ErrAppNameRequired)
	})

	t.Run("bad endpoint", func(t *testing.T) {
		cfg := valid()
		cfg.Endpoint = "not a url"
		assert.ErrorIs(t, cfg.Validate(), ErrEndpointInvalid)
	})

	t.Run("bad email", func(t *testing.T) {
		cfg := valid()
		cfg.AdminEmail = "nobody"
		assert.ErrorIs(t, cfg.Validate(), ErrEmailInvalid)
	})

	t.Run("publish with default credential chain", func(t *testing.T) {
		cfg := valid()
		cfg.Publish.Bucket = "secrets"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("publish with half the credentials", func(t *testing.T) {
		cfg := valid()
		cfg.Publish.Bucket = "secrets"
		cfg.Publish.AccessKey = "ak"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret key")
	})
}
