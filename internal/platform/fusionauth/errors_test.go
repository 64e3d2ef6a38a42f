package fusionauth

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "status only",
			err:  &APIError{Method: "DELETE", Path: "/api/key/k1", StatusCode: http.StatusNotFound},
			want: "DELETE /api/key/k1 returned 404 Not Found",
		},
		{
			name: "raw body",
			err:  &APIError{Method: "POST", Path: "/api/tenant", StatusCode: http.StatusBadGateway, Body: "bad gateway"},
			want: "POST /api/tenant returned 502 Bad Gateway: bad gateway",
		},
		{
			name: "field errors sorted",
			err: &APIError{
				Method:     "POST",
				Path:       "/api/application",
				StatusCode: http.StatusBadRequest,
				GeneralErrors: []ErrorDetail{
					{Code: "[x]", Message: "general"},
				},
				FieldErrors: map[string][]ErrorDetail{
					"b.field": {{Message: "second"}},
					"a.field": {{Message: "first"}},
				},
			},
			want: "POST /api/application returned 400 Bad Request: general; a.field: first; b.field: second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := fmt.Errorf("wrapped: %w", &APIError{StatusCode: http.StatusNotFound})
	unauthorized := &APIError{StatusCode: http.StatusUnauthorized}
	transport := fmt.Errorf("step: %w", &TransportError{Method: "GET", Path: "/api/status", Err: errors.New("refused")})

	assert.False(t, IsUnauthorized(notFound))
	assert.True(t, IsUnauthorized(fmt.Errorf("wrapped: %w", unauthorized)))
	assert.True(t, IsTransport(transport))
	assert.False(t, IsTransport(notFound))
	assert.False(t, IsUnauthorized(nil))
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Method: "POST", Path: "/api/tenant", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "error calling POST /api/tenant: connection refused", err.Error())
}
