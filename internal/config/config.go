package config

import (
	"strings"

	"github.com/imamik/fusionboot/internal/util/naming"
)

// Config holds everything a provisioning run needs to talk to FusionAuth.
type Config struct {
	// AppName seeds every resource name ({app}-tenant, {app}-app, ...).
	AppName string `env:"APP_NAME" yaml:"appName"`

	// APIKey is sent verbatim in the Authorization header.
	APIKey string `env:"FUSIONAUTH_API_KEY" yaml:"apiKey"`

	// Endpoint is the FusionAuth base URL. It doubles as the OIDC issuer.
	Endpoint string `env:"FUSIONAUTH_ENDPOINT" yaml:"endpoint"`

	AdminEmail    string `env:"FUSIONAUTH_ADMIN_EMAIL" yaml:"adminEmail"`
	AdminPassword string `env:"FUSIONAUTH_ADMIN_PASSWORD" yaml:"adminPassword"`

	// SkipTheme disables the theme copy step.
	SkipTheme bool `env:"FUSIONBOOT_SKIP_THEME" yaml:"skipTheme"`

	// SourceThemeID is the theme copied into {app}-theme.
	SourceThemeID string `env:"FUSIONBOOT_SOURCE_THEME_ID" yaml:"sourceThemeId"`

	// StrictMatch turns a search with several matches into an error
	// instead of adopting the first one.
	StrictMatch bool `env:"FUSIONBOOT_STRICT_MATCH" yaml:"strictMatch"`

	// Publish configures optional upload of the emitted env file.
	Publish PublishConfig `envPrefix:"FUSIONBOOT_S3_" yaml:"publish"`
}

// PublishConfig describes an S3-compatible bucket receiving the output record.
type PublishConfig struct {
	Bucket    string `env:"BUCKET" yaml:"bucket"`
	// Key defaults to {app}/auth.{ext}, ext following the output format.
	Key       string `env:"KEY" yaml:"key"`
	Endpoint  string `env:"ENDPOINT" yaml:"endpoint"`
	Region    string `env:"REGION" yaml:"region"`
	AccessKey string `env:"ACCESS_KEY" yaml:"accessKey"`
	SecretKey string `env:"SECRET_KEY" yaml:"secretKey"`
	PathStyle bool   `env:"PATH_STYLE" yaml:"pathStyle"`
}

// Enabled reports whether publishing was requested.
func (p PublishConfig) Enabled() bool {
	return p.Bucket != ""
}

// ApplyDefaults fills blank fields. AppName has no default and must be
// set before calling this for the admin email default to be meaningful.
func (c *Config) ApplyDefaults() {
	c.AppName = strings.TrimSpace(c.AppName)
	if c.APIKey == "" {
		c.APIKey = DefaultAPIKey
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	c.Endpoint = strings.TrimSuffix(strings.TrimSpace(c.Endpoint), "/")
	if c.AdminEmail == "" && c.AppName != "" {
		c.AdminEmail = naming.AdminEmail(c.AppName)
	}
	if c.AdminPassword == "" {
		c.AdminPassword = DefaultAdminPassword
	}
	if c.SourceThemeID == "" {
		c.SourceThemeID = DefaultSourceThemeID
	}
	if c.Publish.Enabled() && c.Publish.Region == "" {
		c.Publish.Region = DefaultPublishRegion
	}
}

// Merge copies every non-zero string field of other onto c. Names and
// URLs are trimmed; credentials are copied verbatim. Boolean switches are
// only ever turned on.
func (c *Config) Merge(other Config) {
	mergeString(&c.AppName, other.AppName)
	mergeSecret(&c.APIKey, other.APIKey)
	mergeString(&c.Endpoint, other.Endpoint)
	mergeString(&c.AdminEmail, other.AdminEmail)
	mergeSecret(&c.AdminPassword, other.AdminPassword)
	mergeString(&c.SourceThemeID, other.SourceThemeID)
	c.SkipTheme = c.SkipTheme || other.SkipTheme
	c.StrictMatch = c.StrictMatch || other.StrictMatch

	mergeString(&c.Publish.Bucket, other.Publish.Bucket)
	mergeString(&c.Publish.Key, other.Publish.Key)
	mergeString(&c.Publish.Endpoint, other.Publish.Endpoint)
	mergeString(&c.Publish.Region, other.Publish.Region)
	mergeSecret(&c.Publish.AccessKey, other.Publish.AccessKey)
	mergeSecret(&c.Publish.SecretKey, other.Publish.SecretKey)
	c.Publish.PathStyle = c.Publish.PathStyle || other.Publish.PathStyle
}

func mergeString(dst *string, src string) {
	if v := strings.TrimSpace(src); v != "" {
		*dst = v
	}
}

func mergeSecret(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
