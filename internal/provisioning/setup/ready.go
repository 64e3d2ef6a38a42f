package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/fusionboot/internal/config"
	"github.com/imamik/fusionboot/internal/platform/fusionauth"
	"github.com/imamik/fusionboot/internal/provisioning"
	"github.com/imamik/fusionboot/internal/util/retry"
)

// StatusChecker probes FusionAuth readiness.
type StatusChecker interface {
	Status(ctx context.Context) error
}

// WaitReady polls the status endpoint with exponential backoff until it
// answers 2xx, timeouts.Ready elapses, or the attempts run out. A rejected
// API key fails at once. A zero Ready timeout returns immediately.
func WaitReady(ctx context.Context, client StatusChecker, timeouts *config.Timeouts, log provisioning.Logger) error {
	if timeouts == nil || timeouts.Ready <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Ready)
	defer cancel()

	log.Printf("Waiting up to %v for FusionAuth to become ready", timeouts.Ready)

	err := retry.WithExponentialBackoff(ctx, func() error {
		err := client.Status(ctx)
		if fusionauth.IsUnauthorized(err) {
			return retry.Fatal(err)
		}
		return err
	},
		retry.WithMaxRetries(timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(timeouts.RetryInitialDelay),
		retry.WithMaxDelay(10*time.Second),
		retry.WithOnRetry(func(attempt int, err error, next time.Duration) {
			log.Printf("FusionAuth not ready (attempt %d): %v, retrying in %v", attempt, err, next)
		}),
	)
	if err != nil {
		return fmt.Errorf("FusionAuth did not become ready: %w", err)
	}

	log.Printf("FusionAuth is ready")
	return nil
}
