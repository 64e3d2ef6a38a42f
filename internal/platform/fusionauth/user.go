package fusionauth

import (
	"context"
	"net/http"
)

const userPath = "/api/user"

// SearchUsers runs a query string search, typically an email address.
func (c *RealClient) SearchUsers(ctx context.Context, query string) ([]User, int, error) {
	resp, err := c.Do(ctx, http.MethodPost, userPath+"/search", searchRequest{
		Search: searchCriteria{QueryString: query},
	})
	if err != nil {
		return nil, 0, err
	}

	var out userSearchResponse
	if err := resp.Decode(&out); err != nil {
		return nil, 0, err
	}
	return out.Users, out.Total, nil
}

// RegisterUser creates a user and registers it with an application in one call.
func (c *RealClient) RegisterUser(ctx context.Context, spec AdminUserSpec) (*User, error) {
	resp, err := c.Do(ctx, http.MethodPost, userPath+"/registration", registrationRequest{
		User: User{
			Email:    spec.Email,
			Password: spec.Password,
		},
		Registration: Registration{
			ApplicationID: spec.ApplicationID,
			Roles:         spec.Roles,
		},
	})
	if err != nil {
		return nil, err
	}

	var out registrationResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.User == nil || out.User.ID == "" {
		return nil, ErrMissingID
	}
	return out.User, nil
}

// EnsureAdminUser finds the user by email or registers it.
func (c *RealClient) EnsureAdminUser(ctx context.Context, spec AdminUserSpec) (*User, bool, error) {
	return (&EnsureOperation[User]{
		Name:         spec.Email,
		ResourceType: "admin user",
		Search:       c.SearchUsers,
		Create: func(ctx context.Context) (*User, error) {
			return c.RegisterUser(ctx, spec)
		},
		ID: func(u User) string { return u.ID },
	}).Execute(ctx, c)
}

// FindUser looks a user up by query string. It returns nil when none matches.
func (c *RealClient) FindUser(ctx context.Context, query string) (*User, error) {
	return (&FindOperation[User]{
		Name:         query,
		ResourceType: "admin user",
		Search:       c.SearchUsers,
		ID:           func(u User) string { return u.ID },
	}).Execute(ctx, c)
}

// DeleteUser deletes a user by ID.
func (c *RealClient) DeleteUser(ctx context.Context, id string) error {
	return (&DeleteOperation{
		ID:           id,
		ResourceType: "admin user",
		Path:         userPath,
	}).Execute(ctx, c)
}
