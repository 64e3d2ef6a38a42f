package fusionauth

import "context"

// MockClient is a mock implementation of IdentityManager.
// Unset funcs return a resource with a fixed mock ID.
type MockClient struct {
	EnsureTenantFunc        func(ctx context.Context, name string) (*Tenant, bool, error)
	FindTenantFunc          func(ctx context.Context, name string) (*Tenant, error)
	SetTenantSigningKeyFunc func(ctx context.Context, tenantID, keyID string) (*Tenant, error)
	DeleteTenantFunc        func(ctx context.Context, id string) error

	EnsureSigningKeyFunc func(ctx context.Context, name string) (*Key, bool, error)
	FindSigningKeyFunc   func(ctx context.Context, name string) (*Key, error)
	DeleteKeyFunc        func(ctx context.Context, id string) error

	EnsureApplicationFunc func(ctx context.Context, spec ApplicationSpec) (*Application, bool, error)

	EnsureAdminUserFunc func(ctx context.Context, spec AdminUserSpec) (*User, bool, error)
	FindUserFunc        func(ctx context.Context, query string) (*User, error)
	DeleteUserFunc      func(ctx context.Context, id string) error

	EnsureThemeFunc func(ctx context.Context, name, sourceThemeID string) (*Theme, bool, error)

	StatusFunc func(ctx context.Context) error

	// TenantID records the last SetTenantID call.
	TenantID string
}

var _ IdentityManager = (*MockClient)(nil)

func (m *MockClient) EnsureTenant(ctx context.Context, name string) (*Tenant, bool, error) {
	if m.EnsureTenantFunc != nil {
		return m.EnsureTenantFunc(ctx, name)
	}
	return &Tenant{ID: "mock-tenant-id", Name: name}, true, nil
}

func (m *MockClient) FindTenant(ctx context.Context, name string) (*Tenant, error) {
	if m.FindTenantFunc != nil {
		return m.FindTenantFunc(ctx, name)
	}
	return &Tenant{ID: "mock-tenant-id", Name: name}, nil
}

func (m *MockClient) SetTenantSigningKey(ctx context.Context, tenantID, keyID string) (*Tenant, error) {
	if m.SetTenantSigningKeyFunc != nil {
		return m.SetTenantSigningKeyFunc(ctx, tenantID, keyID)
	}
	return &Tenant{ID: tenantID, JWTConfiguration: &JWTConfiguration{AccessTokenKeyID: keyID, IDTokenKeyID: keyID}}, nil
}

func (m *MockClient) DeleteTenant(ctx context.Context, id string) error {
	if m.DeleteTenantFunc != nil {
		return m.DeleteTenantFunc(ctx, id)
	}
	return nil
}

func (m *MockClient) EnsureSigningKey(ctx context.Context, name string) (*Key, bool, error) {
	if m.EnsureSigningKeyFunc != nil {
		return m.EnsureSigningKeyFunc(ctx, name)
	}
	return &Key{ID: "mock-key-id", Name: name, Algorithm: KeyAlgorithm, Length: KeyLength}, true, nil
}

func (m *MockClient) FindSigningKey(ctx context.Context, name string) (*Key, error) {
	if m.FindSigningKeyFunc != nil {
		return m.FindSigningKeyFunc(ctx, name)
	}
	return &Key{ID: "mock-key-id", Name: name}, nil
}

func (m *MockClient) DeleteKey(ctx context.Context, id string) error {
	if m.DeleteKeyFunc != nil {
		return m.DeleteKeyFunc(ctx, id)
	}
	return nil
}

func (m *MockClient) EnsureApplication(ctx context.Context, spec ApplicationSpec) (*Application, bool, error) {
	if m.EnsureApplicationFunc != nil {
		return m.EnsureApplicationFunc(ctx, spec)
	}
	app := buildApplication(spec)
	app.ID = "mock-app-id"
	app.OAuthConfiguration.ClientID = "mock-app-id"
	app.OAuthConfiguration.ClientSecret = "mock-client-secret"
	return &app, true, nil
}

func (m *MockClient) EnsureAdminUser(ctx context.Context, spec AdminUserSpec) (*User, bool, error) {
	if m.EnsureAdminUserFunc != nil {
		return m.EnsureAdminUserFunc(ctx, spec)
	}
	return &User{ID: "mock-user-id", Email: spec.Email}, true, nil
}

func (m *MockClient) FindUser(ctx context.Context, query string) (*User, error) {
	if m.FindUserFunc != nil {
		return m.FindUserFunc(ctx, query)
	}
	return &User{ID: "mock-user-id", Email: query}, nil
}

func (m *MockClient) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

func (m *MockClient) EnsureTheme(ctx context.Context, name, sourceThemeID string) (*Theme, bool, error) {
	if m.EnsureThemeFunc != nil {
		return m.EnsureThemeFunc(ctx, name, sourceThemeID)
	}
	return &Theme{ID: "mock-theme-id", Name: name}, true, nil
}

func (m *MockClient) SetTenantID(id string) {
	m.TenantID = id
}

func (m *MockClient) Status(ctx context.Context) error {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx)
	}
	return nil
}
