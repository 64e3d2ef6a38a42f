package fusionauth

import (
	"context"
	"net/http"
)

const applicationPath = "/api/application"

// Grants enabled on every application fusionboot creates.
var defaultGrants = []string{"authorization_code", "refresh_token"}

// SearchApplications returns applications matching name.
func (c *RealClient) SearchApplications(ctx context.Context, name string) ([]Application, int, error) {
	resp, err := c.Do(ctx, http.MethodPost, applicationPath+"/search", searchRequest{
		Search: searchCriteria{Name: name},
	})
	if err != nil {
		return nil, 0, err
	}

	var out applicationSearchResponse
	if err := resp.Decode(&out); err != nil {
		return nil, 0, err
	}
	return out.Applications, out.Total, nil
}

// CreateApplication creates an OAuth application in spec.TenantID.
func (c *RealClient) CreateApplication(ctx context.Context, spec ApplicationSpec) (*Application, error) {
	var opts []RequestOption
	if spec.TenantID != "" {
		opts = append(opts, WithTenant(spec.TenantID))
	}

	resp, err := c.Do(ctx, http.MethodPost, applicationPath, applicationRequest{
		Application: buildApplication(spec),
	}, opts...)
	if err != nil {
		return nil, err
	}

	var out applicationResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.Application == nil || out.Application.ID == "" {
		return nil, ErrMissingID
	}
	return out.Application, nil
}

// EnsureApplication finds the application by name or creates it.
func (c *RealClient) EnsureApplication(ctx context.Context, spec ApplicationSpec) (*Application, bool, error) {
	return (&EnsureOperation[Application]{
		Name:         spec.Name,
		ResourceType: "app",
		Search:       c.SearchApplications,
		Create: func(ctx context.Context) (*Application, error) {
			return c.CreateApplication(ctx, spec)
		},
		ID: func(a Application) string { return a.ID },
	}).Execute(ctx, c)
}

func buildApplication(spec ApplicationSpec) Application {
	roles := make([]ApplicationRole, 0, len(spec.Roles))
	for _, r := range spec.Roles {
		roles = append(roles, ApplicationRole{Name: r})
	}

	return Application{
		Name: spec.Name,
		OAuthConfiguration: &OAuthConfiguration{
			AuthorizedRedirectURLs: []string{spec.CallbackURL},
			AuthorizedOriginURLs:   []string{spec.Origin},
			LogoutURL:              spec.Origin,
			EnabledGrants:          defaultGrants,
			Debug:                  true,
			GenerateRefreshTokens:  true,
			RequireRegistration:    true,
		},
		JWTConfiguration: &JWTConfiguration{
			Enabled:          true,
			AccessTokenKeyID: spec.SigningKeyID,
			IDTokenKeyID:     spec.SigningKeyID,
		},
		RegistrationConfiguration: &RegistrationConfiguration{Enabled: true},
		Roles:                     roles,
	}
}
