package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	// Request bounds a single API call. Zero leaves the HTTP client default (no timeout).
	Request time.Duration `env:"FUSIONBOOT_HTTP_TIMEOUT" envDefault:"0s"`
	// Ready bounds the wait for FusionAuth to answer /api/status. Zero skips the wait.
	Ready             time.Duration `env:"FUSIONBOOT_READY_TIMEOUT" envDefault:"0s"`
	RetryMaxAttempts  int           `env:"FUSIONBOOT_RETRY_MAX_ATTEMPTS" envDefault:"10"`
	RetryInitialDelay time.Duration `env:"FUSIONBOOT_RETRY_INITIAL_DELAY" envDefault:"1s"`
}

// DefaultTimeouts returns the built-in timeout values.
func DefaultTimeouts() *Timeouts {
	return &Timeouts{
		RetryMaxAttempts:  10,
		RetryInitialDelay: 1 * time.Second,
	}
}

// LoadTimeouts loads timeout configuration from environment variables.
// If any variable fails to parse, the defaults are returned.
//
// Environment Variables:
//   - FUSIONBOOT_HTTP_TIMEOUT (default: 0, no timeout)
//   - FUSIONBOOT_READY_TIMEOUT (default: 0, do not wait)
//   - FUSIONBOOT_RETRY_MAX_ATTEMPTS (default: 10)
//   - FUSIONBOOT_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return loadTimeouts(env.Options{})
}

func loadTimeouts(opts env.Options) *Timeouts {
	var t Timeouts
	if err := env.ParseWithOptions(&t, opts); err != nil {
		return DefaultTimeouts()
	}
	return &t
}
