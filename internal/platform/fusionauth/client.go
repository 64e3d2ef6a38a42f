package fusionauth

import "context"

// TenantManager manages tenants.
type TenantManager interface {
	EnsureTenant(ctx context.Context, name string) (*Tenant, bool, error)
	FindTenant(ctx context.Context, name string) (*Tenant, error)
	// SetTenantSigningKey points the tenant's access and ID tokens at keyID.
	SetTenantSigningKey(ctx context.Context, tenantID, keyID string) (*Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
}

// KeyManager manages signing keys.
type KeyManager interface {
	EnsureSigningKey(ctx context.Context, name string) (*Key, bool, error)
	FindSigningKey(ctx context.Context, name string) (*Key, error)
	DeleteKey(ctx context.Context, id string) error
}

// ApplicationManager manages OAuth applications.
type ApplicationManager interface {
	EnsureApplication(ctx context.Context, spec ApplicationSpec) (*Application, bool, error)
}

// UserManager manages users and their registrations.
type UserManager interface {
	EnsureAdminUser(ctx context.Context, spec AdminUserSpec) (*User, bool, error)
	FindUser(ctx context.Context, query string) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

// ThemeManager manages themes.
type ThemeManager interface {
	EnsureTheme(ctx context.Context, name, sourceThemeID string) (*Theme, bool, error)
}

// IdentityManager combines all resource interfaces.
type IdentityManager interface {
	TenantManager
	KeyManager
	ApplicationManager
	UserManager
	ThemeManager

	// SetTenantID scopes subsequent non-tenant requests to the given tenant.
	SetTenantID(id string)
	// Status probes the instance. It returns nil once FusionAuth answers 2xx.
	Status(ctx context.Context) error
}

// Logger is the minimal logging surface the client needs.
type Logger interface {
	Printf(format string, v ...any)
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}
