package fusionauth

import (
	"context"
	"net/http"
)

const themePath = "/api/theme"

// SearchThemes returns themes matching name.
func (c *RealClient) SearchThemes(ctx context.Context, name string) ([]Theme, int, error) {
	resp, err := c.Do(ctx, http.MethodPost, themePath+"/search", searchRequest{
		Search: searchCriteria{Name: name},
	})
	if err != nil {
		return nil, 0, err
	}

	var out themeSearchResponse
	if err := resp.Decode(&out); err != nil {
		return nil, 0, err
	}
	return out.Themes, out.Total, nil
}

// CopyTheme creates a theme named name as a copy of sourceThemeID.
func (c *RealClient) CopyTheme(ctx context.Context, sourceThemeID, name string) (*Theme, error) {
	resp, err := c.Do(ctx, http.MethodPost, themePath, themeRequest{
		SourceThemeID: sourceThemeID,
		Theme:         Theme{Name: name},
	})
	if err != nil {
		return nil, err
	}

	var out themeResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.Theme == nil || out.Theme.ID == "" {
		return nil, ErrMissingID
	}
	return out.Theme, nil
}

// EnsureTheme finds the theme by name or copies it from sourceThemeID.
func (c *RealClient) EnsureTheme(ctx context.Context, name, sourceThemeID string) (*Theme, bool, error) {
	return (&EnsureOperation[Theme]{
		Name:         name,
		ResourceType: "theme",
		Search:       c.SearchThemes,
		Create: func(ctx context.Context) (*Theme, error) {
			return c.CopyTheme(ctx, sourceThemeID, name)
		},
		ID: func(t Theme) string { return t.ID },
	}).Execute(ctx, c)
}
