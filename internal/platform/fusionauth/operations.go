package fusionauth

import (
	"context"
	"fmt"
	"strings"
)

// SearchFunc looks resources up by name. It returns the matches in the
// response page and the total number of matches on the server.
type SearchFunc[T any] func(ctx context.Context, name string) ([]T, int, error)

// EnsureOperation encapsulates search-or-create logic for any FusionAuth resource.
//
// Usage example:
//
//	func (c *RealClient) EnsureTheme(ctx context.Context, name, source string) (*Theme, bool, error) {
//	    return (&EnsureOperation[Theme]{
//	        Name:         name,
//	        ResourceType: "theme",
//	        Search:       c.SearchThemes,
//	        Create:       func(ctx context.Context) (*Theme, error) { return c.CopyTheme(ctx, source, name) },
//	        ID:           func(t Theme) string { return t.ID },
//	    }).Execute(ctx, c)
//	}
type EnsureOperation[T any] struct {
	Name         string
	ResourceType string

	// Search returns the resources matching Name and the server's total
	// match count, which may exceed the returned page.
	Search SearchFunc[T]

	// Create creates the resource. It must return ErrMissingID when the
	// response carries no identifier.
	Create func(ctx context.Context) (*T, error)

	// ID extracts the identifier.
	ID func(T) string
}

// Execute searches for the resource and creates it when absent. The bool
// result is true when the resource was created by this call.
func (op *EnsureOperation[T]) Execute(ctx context.Context, client *RealClient) (*T, bool, error) {
	client.logger.Printf("Checking if %s exists", op.ResourceType)

	existing, err := (&FindOperation[T]{
		Name:         op.Name,
		ResourceType: op.ResourceType,
		Search:       op.Search,
		ID:           op.ID,
	}).Execute(ctx, client)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	client.logger.Printf("%s not found, creating %s", capitalize(op.ResourceType), op.ResourceType)
	created, err := op.Create(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create %s: %w", op.ResourceType, err)
	}
	if created == nil || op.ID(*created) == "" {
		return nil, false, fmt.Errorf("failed to create %s: %w", op.ResourceType, ErrMissingID)
	}

	return created, true, nil
}

// FindOperation looks a resource up by name without creating it.
type FindOperation[T any] struct {
	Name         string
	ResourceType string
	Search       SearchFunc[T]
	ID           func(T) string
}

// Execute returns the first match, or nil when nothing matched. A first
// match without an identifier counts as no match. In strict mode more than
// one match is ErrAmbiguous, judged by the larger of the server total and
// the returned page.
func (op *FindOperation[T]) Execute(ctx context.Context, client *RealClient) (*T, error) {
	matches, total, err := op.Search(ctx, op.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s %q: %w", op.ResourceType, op.Name, err)
	}
	if len(matches) == 0 {
		return nil, nil
	}
	if count := max(total, len(matches)); client.strict && count > 1 {
		return nil, fmt.Errorf("%s %q: %w (%d matches)", op.ResourceType, op.Name, ErrAmbiguous, count)
	}

	first := matches[0]
	if op.ID(first) == "" {
		return nil, nil
	}
	return &first, nil
}

// DeleteOperation encapsulates deletion of a resource by identifier.
type DeleteOperation struct {
	ID           string
	ResourceType string
	Path         string
	Body         any
}

// Execute issues the DELETE. An empty ID fails with ErrMissingID without a
// request. Any 2xx status is success; the body is never read.
func (op *DeleteOperation) Execute(ctx context.Context, client *RealClient) error {
	if op.ID == "" {
		return fmt.Errorf("failed to delete %s: %w", op.ResourceType, ErrMissingID)
	}

	resp, err := client.Do(ctx, "DELETE", op.Path+"/"+op.ID, op.Body)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", op.ResourceType, err)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
