// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the binary with no subcommand
// starts the server.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "animerec",
		Short:         "Anime Recommendation API server",
		Long:          "animerec serves a placeholder anime recommendation API over HTTP.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		newServeCmd(),
		newHealthcheckCmd(),
		newCatalogCmd(),
		newVersionCmd(),
	)
	return root
}
