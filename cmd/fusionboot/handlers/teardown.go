package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/fusionboot/internal/config"
	"github.com/imamik/fusionboot/internal/provisioning"
	"github.com/imamik/fusionboot/internal/provisioning/destroy"
)

// ErrConfirmationRequired is returned when teardown would delete resources
// without a terminal to confirm on and --yes was not given.
var ErrConfirmationRequired = errors.New("refusing to delete without confirmation, pass --yes")

// TeardownOptions carries the teardown command flags.
type TeardownOptions struct {
	ConfigPath     string
	NonInteractive bool
	Yes            bool
	Strict         bool
	LogFormat      string
}

// Teardown looks up the tenant, signing key and admin user by the names
// setup uses and deletes whatever was found. Nothing is ever created.
func Teardown(ctx context.Context, opts TeardownOptions) error {
	interactive := !opts.NonInteractive && opts.ConfigPath == "" && isInteractive()

	cfg, err := resolveConfig(ctx, opts.ConfigPath, interactive, config.Config{
		StrictMatch: opts.Strict,
		SkipTheme:   true,
	})
	if err != nil {
		return err
	}

	observer, err := newObserver(opts.LogFormat, stderr)
	if err != nil {
		return err
	}

	timeouts := loadTimeouts()
	client := newClient(cfg, timeouts, observer)
	pCtx := provisioning.NewContext(ctx, cfg, client, observer)

	destroyer := destroy.NewProvisioner()
	if _, err := destroyer.Resolve(pCtx); err != nil {
		return fmt.Errorf("teardown lookup failed: %w", err)
	}

	state := pCtx.State
	if state.TenantID == "" && state.SigningKeyID == "" && state.AdminUserID == "" {
		fmt.Fprintf(stderr, "Nothing to delete for %s\n", cfg.AppName)
		return nil
	}

	if !opts.Yes {
		if !interactive {
			return ErrConfirmationRequired
		}
		ok, err := confirmTeardown(ctx, wizardOptions())
		if err != nil {
			return fmt.Errorf("teardown prompt canceled: %w", err)
		}
		if !ok {
			fmt.Fprintln(stderr, "Teardown canceled")
			return nil
		}
	}

	report, err := destroyer.Provision(pCtx)
	if err != nil {
		return fmt.Errorf("teardown failed: %w", err)
	}
	printReport(stderr, "teardown", cfg.AppName, report)
	return nil
}
