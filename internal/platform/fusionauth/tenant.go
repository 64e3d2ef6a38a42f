package fusionauth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imamik/fusionboot/internal/util/ptr"
)

const tenantPath = "/api/tenant"

// SearchTenants returns the first tenant matching name, ordered by name,
// and the total match count.
func (c *RealClient) SearchTenants(ctx context.Context, name string) ([]Tenant, int, error) {
	resp, err := c.Do(ctx, http.MethodPost, tenantPath+"/search", searchRequest{
		Search: searchCriteria{
			Name:            name,
			NumberOfResults: 1,
			OrderBy:         "name",
			StartRow:        ptr.Int(0),
		},
	})
	if err != nil {
		return nil, 0, err
	}

	var out tenantSearchResponse
	if err := resp.Decode(&out); err != nil {
		return nil, 0, err
	}
	return out.Tenants, out.Total, nil
}

// CreateTenant creates a tenant with the given name.
func (c *RealClient) CreateTenant(ctx context.Context, name string) (*Tenant, error) {
	resp, err := c.Do(ctx, http.MethodPost, tenantPath, tenantRequest{Tenant: Tenant{Name: name}})
	if err != nil {
		return nil, err
	}
	return decodeTenant(resp)
}

// EnsureTenant finds the tenant by name or creates it.
func (c *RealClient) EnsureTenant(ctx context.Context, name string) (*Tenant, bool, error) {
	return (&EnsureOperation[Tenant]{
		Name:         name,
		ResourceType: "tenant",
		Search:       c.SearchTenants,
		Create: func(ctx context.Context) (*Tenant, error) {
			return c.CreateTenant(ctx, name)
		},
		ID: func(t Tenant) string { return t.ID },
	}).Execute(ctx, c)
}

// FindTenant looks a tenant up by name. It returns nil when none matches.
func (c *RealClient) FindTenant(ctx context.Context, name string) (*Tenant, error) {
	return (&FindOperation[Tenant]{
		Name:         name,
		ResourceType: "tenant",
		Search:       c.SearchTenants,
		ID:           func(t Tenant) string { return t.ID },
	}).Execute(ctx, c)
}

// SetTenantSigningKey points the tenant's access and ID tokens at keyID.
// An empty tenant or key ID is still sent; the server rejects it.
func (c *RealClient) SetTenantSigningKey(ctx context.Context, tenantID, keyID string) (*Tenant, error) {
	c.logger.Printf("Adding key to tenant")

	resp, err := c.Do(ctx, http.MethodPatch, tenantPath+"/"+tenantID, tenantRequest{
		Tenant: Tenant{
			JWTConfiguration: &JWTConfiguration{
				AccessTokenKeyID: keyID,
				IDTokenKeyID:     keyID,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	tenant, err := decodeTenant(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to patch tenant: %w", err)
	}
	return tenant, nil
}

// DeleteTenant deletes a tenant synchronously.
func (c *RealClient) DeleteTenant(ctx context.Context, id string) error {
	return (&DeleteOperation{
		ID:           id,
		ResourceType: "tenant",
		Path:         tenantPath,
		Body:         tenantDeleteRequest{Async: false},
	}).Execute(ctx, c)
}

func decodeTenant(resp *Response) (*Tenant, error) {
	var out tenantResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.Tenant == nil || out.Tenant.ID == "" {
		return nil, ErrMissingID
	}
	return out.Tenant, nil
}
