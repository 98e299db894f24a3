package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dest4590/collapse-updater/internal/service/selfupdate"
)

// selfUpdateCmd replaces the updater binary with the latest released one.
var selfUpdateCmd = &cobra.Command{
	Use:   "self-update",
	Short: "Replace the updater with the latest released build",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Setup graceful shutdown handling.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		options := &selfupdate.Options{
			ConfigPath: configPath,
		}

		return selfupdate.Run(ctx, options)
	},
}
