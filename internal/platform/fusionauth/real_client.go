package fusionauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerTenantID      = "X-FusionAuth-TenantId"

	contentTypeJSON = "application/json"

	// maxErrorBody caps the raw body kept on an APIError.
	maxErrorBody = 512
)

// RealClient implements IdentityManager against a FusionAuth instance.
type RealClient struct {
	endpoint   string
	apiKey     string
	tenantID   string
	strict     bool
	httpClient *http.Client
	logger     Logger
}

var _ IdentityManager = (*RealClient)(nil)

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithRequestTimeout bounds every request. Zero keeps the client default.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *RealClient) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l Logger) ClientOption {
	return func(c *RealClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrictMatch makes Ensure and Find operations fail on ambiguous searches.
func WithStrictMatch(strict bool) ClientOption {
	return func(c *RealClient) {
		c.strict = strict
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(endpoint, apiKey string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		logger:     discardLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTenantID scopes subsequent non-tenant requests to the given tenant.
func (c *RealClient) SetTenantID(id string) {
	c.tenantID = id
}

// RequestOption customises a single call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	headers map[string]string
}

// WithHeader sets a header, overriding the defaults.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithTenant scopes a single request to a tenant.
func WithTenant(id string) RequestOption {
	return WithHeader(headerTenantID, id)
}

// Response is the outcome of a call that reached the server.
type Response struct {
	Method     string
	Path       string
	StatusCode int
	// OK is true for any 2xx status.
	OK bool
	// Body is the JSON body. It is nil for DELETE, for empty bodies and
	// for bodies that are not valid JSON.
	Body json.RawMessage

	raw []byte
}

// Err returns nil for 2xx responses and an *APIError otherwise.
func (r *Response) Err() error {
	if r.OK {
		return nil
	}

	apiErr := &APIError{
		Method:     r.Method,
		Path:       r.Path,
		StatusCode: r.StatusCode,
	}
	if r.Body != nil {
		_ = json.Unmarshal(r.Body, apiErr)
	}
	if len(apiErr.GeneralErrors) == 0 && len(apiErr.FieldErrors) == 0 {
		apiErr.Body = truncate(strings.TrimSpace(string(r.raw)), maxErrorBody)
	}
	return apiErr
}

// Decode unmarshals a successful body into v. Non-2xx responses return
// their *APIError. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if err := r.Err(); err != nil {
		return err
	}
	if len(bytes.TrimSpace(r.raw)) == 0 {
		return nil
	}
	if r.Body == nil {
		return fmt.Errorf("%s %s: %w", r.Method, r.Path, ErrInvalidBody)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", r.Method, r.Path, err)
	}
	return nil
}

// Do issues a single API request. It is the only place that talks HTTP.
//
// A nil error means the server answered; inspect Response.OK or call
// Response.Err for the API-level outcome. A non-nil error is always a
// *TransportError (or a request encoding failure) and should halt the run.
func (c *RealClient) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	c.logger.Printf("Calling API: %s %s", method, path)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	req.Header.Set(headerAuthorization, c.apiKey)
	req.Header.Set(headerContentType, contentTypeJSON)
	if c.tenantID != "" && !isTenantPath(path) {
		req.Header.Set(headerTenantID, c.tenantID)
	}

	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}
	for key, value := range ro.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	out := &Response{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
	}

	// Deletions are judged by status alone.
	if method == http.MethodDelete {
		_, _ = io.Copy(io.Discard, resp.Body)
		return out, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	out.raw = data
	if len(bytes.TrimSpace(data)) > 0 && json.Valid(data) {
		out.Body = data
	}

	return out, nil
}

// isTenantPath reports whether path addresses tenants themselves, which
// must not carry a tenant scoping header.
func isTenantPath(path string) bool {
	return path == tenantPath || strings.HasPrefix(path, tenantPath+"/")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
