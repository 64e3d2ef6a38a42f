// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the fusionboot CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fusionboot",
		Short:         "Provision FusionAuth tenants, keys and applications",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Setup())
	cmd.AddCommand(Teardown())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
