package naming

import (
	"fmt"
	"strings"
)

// Naming functions for application resources.

func Tenant(app string) string {
	return fmt.Sprintf("%s-tenant", app)
}

func SigningKey(app string) string {
	return fmt.Sprintf("%s-signing-key", app)
}

func Application(app string) string {
	return fmt.Sprintf("%s-app", app)
}

func Theme(app string) string {
	return fmt.Sprintf("%s-theme", app)
}

// AdminEmail returns the default admin email for an application.
func AdminEmail(app string) string {
	return fmt.Sprintf("admin@%s.com", app)
}

// CallbackURL returns the OAuth redirect URL the consuming application serves.
func CallbackURL(endpoint string) string {
	return strings.TrimSuffix(endpoint, "/") + "/api/auth/callback/fusionauth"
}

// ObjectKey returns the default object storage key for the output record,
// e.g. "my-app/auth.json".
func ObjectKey(app, ext string) string {
	return fmt.Sprintf("%s/auth.%s", app, ext)
}
