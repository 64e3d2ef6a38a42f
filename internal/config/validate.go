package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// Validation errors.
var (
	ErrAppNameRequired = errors.New("APP_NAME is required, set it in the environment or pass it in")
	ErrAppNameInvalid  = errors.New("app name must not have surrounding whitespace or contain control characters")
	ErrEndpointInvalid = errors.New("endpoint must be an absolute http or https URL")
	ErrEmailInvalid    = errors.New("admin email must contain '@'")
)

// ValidateAppName checks an application name. Any printable name is
// accepted since it only seeds resource names.
func ValidateAppName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrAppNameRequired
	}
	if strings.TrimSpace(name) != name || strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return ErrAppNameInvalid
	}
	return nil
}

// ValidateEndpoint checks a FusionAuth base URL. Empty is accepted
// because the default applies.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return nil
	}
	u, err := url.Parse(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrEndpointInvalid
	}
	return nil
}

// ValidateEmail performs a minimal sanity check. Empty is accepted.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailInvalid
	}
	return nil
}

// Validate checks the configuration after defaults have been applied.
func (c *Config) Validate() error {
	if err := ValidateAppName(c.AppName); err != nil {
		return err
	}
	if err := ValidateEndpoint(c.Endpoint); err != nil {
		return fmt.Errorf("%w: %q", err, c.Endpoint)
	}
	if c.APIKey == "" {
		return errors.New("api key is required")
	}
	if err := ValidateEmail(c.AdminEmail); err != nil {
		return fmt.Errorf("%w: %q", err, c.AdminEmail)
	}
	if c.AdminPassword == "" {
		return errors.New("admin password is required")
	}
	if c.Publish.Enabled() && (c.Publish.AccessKey == "") != (c.Publish.SecretKey == "") {
		return errors.New("publishing needs both an access key and a secret key, or neither to use the default AWS credential chain")
	}
	return nil
}
