package fusionauth

import (
	"context"
	"net/http"
)

const statusPath = "/api/status"

// Status probes the instance. It returns nil on a 2xx answer, an *APIError
// while FusionAuth is still starting, and a *TransportError while it is
// unreachable.
func (c *RealClient) Status(ctx context.Context) error {
	resp, err := c.Do(ctx, http.MethodGet, statusPath, nil)
	if err != nil {
		return err
	}
	return resp.Err()
}
