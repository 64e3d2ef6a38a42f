package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/fusionboot/internal/config"
	"github.com/imamik/fusionboot/internal/output"
	"github.com/imamik/fusionboot/internal/provisioning"
	"github.com/imamik/fusionboot/internal/provisioning/destroy"
	"github.com/imamik/fusionboot/internal/provisioning/setup"
	"github.com/imamik/fusionboot/internal/util/naming"
)

// Teardown modes accepted by --teardown.
const (
	TeardownAsk = "ask"
	TeardownYes = "yes"
	TeardownNo  = "no"
)

// SetupOptions carries the setup command flags.
type SetupOptions struct {
	ConfigPath     string
	NonInteractive bool
	Format         string
	OutputPath     string
	NoTheme        bool
	Strict         bool
	Wait           time.Duration
	TUI            bool
	LogFormat      string
	Teardown       string
	Publish        config.PublishConfig
}

// Setup resolves or creates every FusionAuth resource, prints the output
// record and optionally tears everything down again.
//
// Steps that cannot be resolved are reported but do not fail the command.
// Transport failures abort the run and are returned.
func Setup(ctx context.Context, opts SetupOptions) error {
	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	if err := validateTeardownMode(opts.Teardown); err != nil {
		return err
	}

	interactive := !opts.NonInteractive && opts.ConfigPath == "" && isInteractive()

	cfg, err := resolveConfig(ctx, opts.ConfigPath, interactive, config.Config{
		SkipTheme:   opts.NoTheme,
		StrictMatch: opts.Strict,
		Publish:     opts.Publish,
	})
	if err != nil {
		return err
	}

	observer, err := newObserver(opts.LogFormat, stderr)
	if err != nil {
		return err
	}

	timeouts := loadTimeouts()
	if opts.Wait > 0 {
		timeouts.Ready = opts.Wait
	}

	var pCtx *provisioning.Context
	run := func(ctx context.Context, obs provisioning.Observer) (*provisioning.Report, error) {
		client := newClient(cfg, timeouts, obs)
		if err := waitReady(ctx, client, timeouts, obs); err != nil {
			return nil, err
		}
		pCtx = provisioning.NewContext(ctx, cfg, client, obs)
		return setup.NewProvisioner().Provision(pCtx)
	}

	var report *provisioning.Report
	if opts.TUI {
		report, err = runTUI(ctx, cfg.AppName, phaseNames(setup.NewProvisioner().Phases(cfg)), run)
	} else {
		report, err = run(ctx, observer)
	}
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	printReport(stderr, "setup", cfg.AppName, report)

	data, err := emitRecord(pCtx.State, cfg.Endpoint, format, opts.OutputPath)
	if err != nil {
		return err
	}

	if cfg.Publish.Enabled() {
		if err := publish(ctx, cfg.AppName, cfg.Publish, data, format, observer); err != nil {
			return err
		}
	}

	teardown, err := shouldTeardown(ctx, opts.Teardown, interactive)
	if err != nil {
		return err
	}
	if !teardown {
		return nil
	}

	// Teardown runs on a fresh client and context bound to the console observer.
	client := newClient(cfg, timeouts, observer)
	client.SetTenantID(pCtx.State.TenantID)
	tCtx := provisioning.NewContext(ctx, cfg, client, observer)
	tCtx.State = pCtx.State

	report, err = destroy.NewProvisioner().Provision(tCtx)
	if err != nil {
		return fmt.Errorf("teardown failed: %w", err)
	}
	printReport(stderr, "teardown", cfg.AppName, report)
	return nil
}

// emitRecord renders the output record and writes it to path, or stdout
// when path is empty. The rendered bytes are returned for publishing.
func emitRecord(state *provisioning.State, issuer string, format output.Format, path string) ([]byte, error) {
	record, err := output.NewRecord(state, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to build output: %w", err)
	}
	data, err := output.Render(record, format)
	if err != nil {
		return nil, err
	}

	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		return data, nil
	}

	if err := output.WriteFile(path, data); err != nil {
		return nil, err
	}
	fmt.Fprintf(stderr, "Wrote %s\n", path)
	return data, nil
}

// publish uploads data to the configured bucket. Without an explicit key
// the object is named after the app and the output format.
func publish(ctx context.Context, appName string, p config.PublishConfig, data []byte, format output.Format, log provisioning.Logger) error {
	store, err := newObjectStore(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to create object store client: %w", err)
	}
	key := p.Key
	if key == "" {
		key = naming.ObjectKey(appName, format.Extension())
	}
	pub := &output.Publisher{Store: store, Bucket: p.Bucket, Key: key}
	if err := pub.Publish(ctx, data, format); err != nil {
		return err
	}
	log.Printf("Published output to %s", pub)
	return nil
}

// shouldTeardown decides whether to delete what was just provisioned.
// Asking without a terminal answers no.
func shouldTeardown(ctx context.Context, mode string, interactive bool) (bool, error) {
	switch mode {
	case TeardownYes:
		return true, nil
	case "", TeardownAsk:
		if !interactive {
			return false, nil
		}
		ok, err := confirmTeardown(ctx, wizardOptions())
		if err != nil {
			return false, fmt.Errorf("teardown prompt canceled: %w", err)
		}
		return ok, nil
	default:
		return false, nil
	}
}

func validateTeardownMode(mode string) error {
	switch mode {
	case "", TeardownAsk, TeardownYes, TeardownNo:
		return nil
	}
	return fmt.Errorf("unsupported teardown mode %q (expected %s, %s or %s)", mode, TeardownAsk, TeardownYes, TeardownNo)
}

func phaseNames(phases []provisioning.Phase) []string {
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.Name()
	}
	return names
}
