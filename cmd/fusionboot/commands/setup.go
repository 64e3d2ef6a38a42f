package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fusionboot/cmd/fusionboot/handlers"
)

// Setup returns the setup command.
//
// Environment variables:
//
//	APP_NAME: application name, seeds every resource name (required)
//	FUSIONAUTH_API_KEY, FUSIONAUTH_ENDPOINT: connection settings
//	FUSIONAUTH_ADMIN_EMAIL, FUSIONAUTH_ADMIN_PASSWORD: admin user
func Setup() *cobra.Command {
	var opts handlers.SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create or adopt the FusionAuth resources for an application",
		Long: `Setup makes sure a tenant, signing key, application, admin user and
theme exist for the application, then prints the variables the application
needs to authenticate against FusionAuth.

Each resource is searched by name first and only created when missing, so
setup can be run repeatedly. Steps that fail are reported and the run
continues with the remaining steps.

When stdin is a terminal and no config file is given, missing settings are
prompted for. Afterwards you are asked whether everything should be deleted
again; use --teardown to answer up front.

Examples:
  # Interactive
  fusionboot setup

  # Non-interactive, env file written to disk
  APP_NAME=iron-pixel fusionboot setup --non-interactive --format env -o .env.local

  # Wait for a freshly started container first
  fusionboot setup -c fusionboot.yaml --wait 2m`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to YAML configuration file (implies --non-interactive)")
	f.BoolVar(&opts.NonInteractive, "non-interactive", false, "Never prompt; read settings from env and config file")
	f.StringVar(&opts.Format, "format", "json", "Output format: json, env or yaml")
	f.StringVarP(&opts.OutputPath, "output", "o", "", "Write output to this file instead of stdout")
	f.BoolVar(&opts.NoTheme, "no-theme", false, "Skip copying the theme")
	f.BoolVar(&opts.Strict, "strict", false, "Fail a step when a search matches more than one resource")
	f.DurationVar(&opts.Wait, "wait", 0, "Wait up to this long for FusionAuth to become ready")
	f.BoolVar(&opts.TUI, "tui", false, "Show an interactive progress view")
	f.StringVar(&opts.LogFormat, "log-format", handlers.LogFormatText, "Log format: text or json")
	f.StringVar(&opts.Teardown, "teardown", handlers.TeardownAsk, "Delete everything after setup: ask, yes or no")

	f.StringVar(&opts.Publish.Bucket, "publish-bucket", "", "Upload output to this S3 bucket")
	f.StringVar(&opts.Publish.Key, "publish-key", "", "Object key for the upload (default: {app}/auth.{format})")
	f.StringVar(&opts.Publish.Endpoint, "s3-endpoint", "", "S3-compatible endpoint URL")
	f.StringVar(&opts.Publish.Region, "s3-region", "", "S3 region (default: us-east-1)")
	f.BoolVar(&opts.Publish.PathStyle, "s3-path-style", false, "Use path-style bucket addressing")

	return cmd
}
