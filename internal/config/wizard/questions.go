package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/fusionboot/internal/config"
	"github.com/imamik/fusionboot/internal/util/naming"
)

// runApplicationGroup prompts for the application name.
func runApplicationGroup(ctx context.Context, current *config.Config, answers *Answers, opts Options) error {
	envDefault := current.AppName

	return newForm(opts,
		huh.NewGroup(
			huh.NewInput().
				Title("App Name").
				Description(appNameDescription(envDefault)).
				Placeholder(placeholder(envDefault, "my-app")).
				Value(&answers.AppName).
				Validate(appNameValidator(envDefault)),
		).Title("Application"),
	).RunWithContext(ctx)
}

// runConnectionGroup prompts for the API key and endpoint.
func runConnectionGroup(ctx context.Context, current *config.Config, answers *Answers, opts Options) error {
	return newForm(opts,
		huh.NewGroup(
			huh.NewInput().
				Title("API Key").
				Description("FusionAuth API key with access to tenants, keys, applications, users and themes").
				Placeholder(placeholder(current.APIKey, config.DefaultAPIKey)).
				EchoMode(huh.EchoModePassword).
				Value(&answers.APIKey),
			huh.NewInput().
				Title("API Endpoint").
				Placeholder(placeholder(current.Endpoint, config.DefaultEndpoint)).
				Value(&answers.Endpoint).
				Validate(validateEndpoint),
		).Title("FusionAuth"),
	).RunWithContext(ctx)
}

// runAdminGroup prompts for the admin user's credentials.
func runAdminGroup(ctx context.Context, current *config.Config, answers *Answers, opts Options) error {
	emailDefault := current.AdminEmail
	if emailDefault == "" {
		emailDefault = "admin@example.com"
	}

	return newForm(opts,
		huh.NewGroup(
			huh.NewInput().
				Title("Admin Email").
				Description("Left blank, admin@{app}.com is used").
				Placeholder(emailDefault).
				Value(&answers.AdminEmail).
				Validate(config.ValidateEmail),
			huh.NewInput().
				Title("Admin Password").
				Placeholder(placeholder(current.AdminPassword, config.DefaultAdminPassword)).
				EchoMode(huh.EchoModePassword).
				Value(&answers.AdminPassword),
		).Title("Admin User"),
	).RunWithContext(ctx)
}

func appNameDescription(envDefault string) string {
	if envDefault == "" {
		return "Seeds every resource name, e.g. my-app-tenant"
	}
	return fmt.Sprintf("Left blank, %q from the environment is used (%s)", envDefault, naming.Tenant(envDefault))
}

// appNameValidator accepts a blank answer only when a default exists.
func appNameValidator(envDefault string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" && envDefault != "" {
			return nil
		}
		return config.ValidateAppName(s)
	}
}

// validateEndpoint accepts blank (default) or an http(s) URL.
func validateEndpoint(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return errEndpointScheme
	}
	return config.ValidateEndpoint(s)
}

func placeholder(current, fallback string) string {
	if current != "" {
		return current
	}
	return fallback
}
