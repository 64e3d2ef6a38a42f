// Package main is the entry point for the fusionboot CLI.
//
// fusionboot provisions the FusionAuth resources an application needs for
// local development: a tenant, an RS256 signing key, an OAuth application,
// an admin user and a theme. Each resource is looked up by name first and
// only created when missing, so runs can be repeated safely.
//
// Commands: setup, teardown, version, completion.
//
// For detailed usage information, run:
//
//	fusionboot --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/fusionboot/cmd/fusionboot/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	commands.SetVersionInfo(version, commit, date)
	err := commands.Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
