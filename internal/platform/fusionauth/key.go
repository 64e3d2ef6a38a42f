package fusionauth

import (
	"context"
	"net/http"

	"github.com/imamik/fusionboot/internal/util/ptr"
)

const (
	keyPath = "/api/key"

	// KeyAlgorithm and KeyLength describe generated signing keys.
	KeyAlgorithm = "RS256"
	KeyLength    = 2048
)

// SearchKeys returns the first key matching name, ordered by name, and
// the total match count.
func (c *RealClient) SearchKeys(ctx context.Context, name string) ([]Key, int, error) {
	resp, err := c.Do(ctx, http.MethodPost, keyPath+"/search", searchRequest{
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

	var out keySearchResponse
	if err := resp.Decode(&out); err != nil {
		return nil, 0, err
	}
	return out.Keys, out.Total, nil
}

// GenerateKey generates an RS256 signing key.
func (c *RealClient) GenerateKey(ctx context.Context, name string) (*Key, error) {
	resp, err := c.Do(ctx, http.MethodPost, keyPath+"/generate", keyRequest{
		Key: Key{
			Algorithm: KeyAlgorithm,
			Name:      name,
			Length:    KeyLength,
		},
	})
	if err != nil {
		return nil, err
	}

	var out keyResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.Key == nil || out.Key.ID == "" {
		return nil, ErrMissingID
	}
	return out.Key, nil
}

// EnsureSigningKey finds the signing key by name or generates it.
func (c *RealClient) EnsureSigningKey(ctx context.Context, name string) (*Key, bool, error) {
	return (&EnsureOperation[Key]{
		Name:         name,
		ResourceType: "key",
		Search:       c.SearchKeys,
		Create: func(ctx context.Context) (*Key, error) {
			return c.GenerateKey(ctx, name)
		},
		ID: func(k Key) string { return k.ID },
	}).Execute(ctx, c)
}

// FindSigningKey looks a key up by name. It returns nil when none matches.
func (c *RealClient) FindSigningKey(ctx context.Context, name string) (*Key, error) {
	return (&FindOperation[Key]{
		Name:         name,
		ResourceType: "key",
		Search:       c.SearchKeys,
		ID:           func(k Key) string { return k.ID },
	}).Execute(ctx, c)
}

// DeleteKey deletes a key by ID.
func (c *RealClient) DeleteKey(ctx context.Context, id string) error {
	return (&DeleteOperation{
		ID:           id,
		ResourceType: "key",
		Path:         keyPath,
	}).Execute(ctx, c)
}
