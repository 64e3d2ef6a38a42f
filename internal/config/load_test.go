package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFrom(t *testing.T) {
	cfg, err := LoadEnvFrom(map[string]string{
		"APP_NAME":                  "iron-pixel",
		"FUSIONAUTH_API_KEY":        "abc",
		"FUSIONAUTH_ENDPOINT":       "http://fusionauth:9011",
		"FUSIONBOOT_SKIP_THEME":     "true",
		"FUSIONBOOT_S3_BUCKET":      "secrets",
		"FUSIONBOOT_S3_ACCESS_KEY":  "ak",
		"FUSIONBOOT_S3_PATH_STYLE":  "true",
		"FUSIONBOOT_STRICT_MATCH":   "false",
		"FUSIONAUTH_ADMIN_PASSWORD": "pw",
	})
	require.NoError(t, err)

	assert.Equal(t, "iron-pixel", cfg.AppName)
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, "http://fusionauth:9011", cfg.Endpoint)
	assert.Equal(t, "pw", cfg.AdminPassword)
	assert.True(t, cfg.SkipTheme)
	assert.False(t, cfg.StrictMatch)
	assert.Equal(t, "secrets", cfg.Publish.Bucket)
	assert.Equal(t, "ak", cfg.Publish.AccessKey)
	assert.True(t, cfg.Publish.PathStyle)
}

func TestLoadEnvFrom_InvalidBool(t *testing.T) {
	_, err := LoadEnvFrom(map[string]string{"FUSIONBOOT_SKIP_THEME": "maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fusionboot.yaml")
	content := `appName: iron-pixel
endpoint: https://auth.example.com
adminEmail: ops@example.com
skipTheme: true
publish:
  bucket: secrets
  region: fsn1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "iron-pixel", cfg.AppName)
	assert.Equal(t, "https://auth.example.com", cfg.Endpoint)
	assert.Equal(t, "ops@example.com", cfg.AdminEmail)
	assert.True(t, cfg.SkipTheme)
	assert.Equal(t, "secrets", cfg.Publish.Bucket)
	assert.Equal(t, "fsn1", cfg.Publish.Region)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("appName: [unterminated"), 0o600))
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal yaml")
	})
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	t.Setenv("APP_NAME", "from-env")
	t.Setenv("FUSIONAUTH_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "fusionboot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("appName: from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.AppName)
	assert.Equal(t, "env-key", cfg.APIKey)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AppName)
}
