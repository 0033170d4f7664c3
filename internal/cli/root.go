package cli

import (
	"context"

	"github.com/localstack/dockhand/internal/config"
	"github.com/localstack/dockhand/internal/env"
	"github.com/localstack/dockhand/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "dockhand",
	Short:             "Ephemeral Docker containers and networks",
	Long:              "dockhand provisions throwaway Docker containers and networks for local development and testing.",
	PersistentPreRunE: initConfig,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	rootCmd.Version = version.Version()
	rootCmd.SetVersionTemplate(versionLine() + "\n")
	configureHelp(rootCmd)
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initConfig(_ *cobra.Command, _ []string) error {
	env.Init()
	return config.Init()
}
