// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/imamik/fusionboot/internal/config"
	"github.com/imamik/fusionboot/internal/config/wizard"
	"github.com/imamik/fusionboot/internal/output"
	"github.com/imamik/fusionboot/internal/platform/fusionauth"
	"github.com/imamik/fusionboot/internal/platform/s3"
	"github.com/imamik/fusionboot/internal/provisioning"
	"github.com/imamik/fusionboot/internal/provisioning/setup"
	"github.com/imamik/fusionboot/internal/ui/tui"
)

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig reads env and the optional YAML file.
	loadConfig = config.Load

	// loadTimeouts reads timeout overrides from the environment.
	loadTimeouts = config.LoadTimeouts

	// newClient creates the FusionAuth client for cfg.
	newClient = func(cfg *config.Config, timeouts *config.Timeouts, log fusionauth.Logger) fusionauth.IdentityManager {
		return fusionauth.NewRealClient(cfg.Endpoint, cfg.APIKey,
			fusionauth.WithRequestTimeout(timeouts.Request),
			fusionauth.WithLogger(log),
			fusionauth.WithStrictMatch(cfg.StrictMatch),
		)
	}

	// newObjectStore creates the bucket client used to publish output.
	newObjectStore = func(ctx context.Context, p config.PublishConfig) (output.ObjectStore, error) {
		return s3.NewClient(ctx, s3.Options{
			Endpoint:  p.Endpoint,
			Region:    p.Region,
			AccessKey: p.AccessKey,
			SecretKey: p.SecretKey,
			PathStyle: p.PathStyle,
		})
	}

	// runWizard prompts for connection settings.
	runWizard = wizard.RunWizard

	// confirmTeardown asks before deleting.
	confirmTeardown = wizard.ConfirmTeardown

	// waitReady blocks until FusionAuth answers.
	waitReady = setup.WaitReady

	// runTUI wraps a run in the progress view.
	runTUI = func(ctx context.Context, title string, phases []string, run tui.RunFunc) (*provisioning.Report, error) {
		return tui.Run(ctx, title, phases, run)
	}

	// isInteractive reports whether stdin is a terminal.
	isInteractive = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// accessibleMode reports whether prompts should render as plain line
	// prompts for screen readers, following huh's ACCESSIBLE convention.
	accessibleMode = func() bool {
		ok, _ := strconv.ParseBool(os.Getenv("ACCESSIBLE"))
		return ok
	}

	// stdin, stdout and stderr are the process streams.
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// newObserver builds the observer for --log-format.
func newObserver(format string, w io.Writer) (provisioning.Observer, error) {
	switch format {
	case "", LogFormatText:
		return provisioning.NewConsoleObserver(w), nil
	case LogFormatJSON:
		return provisioning.NewJSONObserver(w), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q (expected %s or %s)", format, LogFormatText, LogFormatJSON)
	}
}

// wizardOptions renders prompts on stderr so stdout carries only the output
// record.
func wizardOptions() wizard.Options {
	return wizard.Options{
		Accessible: accessibleMode(),
		Input:      stdin,
		Output:     stderr,
	}
}

// resolveConfig loads configuration, prompts when interactive, applies
// defaults and validates.
func resolveConfig(ctx context.Context, configPath string, interactive bool, overrides config.Config) (*config.Config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Merge(overrides)

	if interactive {
		answers, err := runWizard(ctx, cfg, wizardOptions())
		if err != nil {
			return nil, fmt.Errorf("wizard canceled: %w", err)
		}
		answers.Apply(cfg)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
