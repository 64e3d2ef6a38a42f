package fusionauth

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrMissingID is returned when a response that should describe a
	// resource carries no identifier, or when an operation needs an ID that
	// was never resolved.
	ErrMissingID = errors.New("missing resource identifier")

	// ErrAmbiguous is returned in strict mode when a search matches more
	// than one resource.
	ErrAmbiguous = errors.New("search matched more than one resource")

	// ErrInvalidBody is returned when a non-DELETE response is not JSON.
	ErrInvalidBody = errors.New("response body is not valid JSON")
)

// ErrorDetail is a single FusionAuth error entry.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError is a non-2xx FusionAuth response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int

	GeneralErrors []ErrorDetail            `json:"generalErrors,omitempty"`
	FieldErrors   map[string][]ErrorDetail `json:"fieldErrors,omitempty"`

	// Body is the raw response body, kept for logging.
	Body string `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var details []string
	for _, d := range e.GeneralErrors {
		details = append(details, d.Message)
	}

	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		for _, d := range e.FieldErrors[f] {
			details = append(details, fmt.Sprintf("%s: %s", f, d.Message))
		}
	}

	msg := fmt.Sprintf("%s %s returned %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if len(details) > 0 {
		msg += ": " + strings.Join(details, "; ")
	} else if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// TransportError is a network-level failure. It aborts a provisioning run.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error calling %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is (or wraps) a transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsUnauthorized reports whether err is a 401 API error, usually a bad API key.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
