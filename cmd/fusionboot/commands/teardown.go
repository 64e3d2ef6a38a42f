package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fusionboot/cmd/fusionboot/handlers"
)

// Teardown returns the teardown command.
func Teardown() *cobra.Command {
	var opts handlers.TeardownOptions

	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Delete the tenant, signing key and admin user of an application",
		Long: `Teardown looks up the tenant, signing key and admin user by the names
setup uses and deletes the ones it finds. The application is removed
together with its tenant.

Nothing is created. Without a terminal, --yes is required.

Example:
  APP_NAME=iron-pixel fusionboot teardown --yes

WARNING: This operation is irreversible.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Teardown(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to YAML configuration file (implies --non-interactive)")
	f.BoolVar(&opts.NonInteractive, "non-interactive", false, "Never prompt; read settings from env and config file")
	f.BoolVarP(&opts.Yes, "yes", "y", false, "Delete without asking")
	f.BoolVar(&opts.Strict, "strict", false, "Fail a lookup when a search matches more than one resource")
	f.StringVar(&opts.LogFormat, "log-format", handlers.LogFormatText, "Log format: text or json")

	return cmd
}
