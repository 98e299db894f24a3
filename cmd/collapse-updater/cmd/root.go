package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dest4590/collapse-updater/internal/console"
	"github.com/dest4590/collapse-updater/internal/domain/update"
	"github.com/dest4590/collapse-updater/internal/service/selfupdate"
	"github.com/dest4590/collapse-updater/internal/service/updater"
	"github.com/dest4590/collapse-updater/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// preRelease switches the updater to the pre-release channel.
	preRelease bool

	// rootCmd represents the base command for updating and starting the loader.
	rootCmd = &cobra.Command{
		Use:   "collapse-updater",
		Short: "Download the latest CollapseLoader build and start it",
		Long: `Resolves the latest CollapseLoader release, downloads its build into the
working directory unless the current one is already present, sweeps older
builds, and hands execution off to the loader.

Arguments and unknown flags are not interpreted by the updater; the full
command line is forwarded to the loader verbatim.`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			channel := update.ChannelStable
			if preRelease {
				channel = update.ChannelPreRelease
			}

			options := &updater.Options{
				ConfigPath:  configPath,
				Channel:     channel,
				ForwardArgs: os.Args[1:],
				Sink:        console.NewReporter(cmd.OutOrStdout()),
			}

			return updater.Run(ctx, options)
		},
	}
)

// Execute runs the collapse-updater CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(selfUpdateCmd)

	// Sweep the leftover of a previous self-update before doing anything else.
	selfupdate.CleanupOld(context.Background())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	// The config flag is persistent so the self-update subcommand shares it.
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file")
	rootCmd.Flags().BoolVar(&preRelease, "prerelease", false, "follow the pre-release channel")
}
