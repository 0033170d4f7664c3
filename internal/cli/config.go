package cli

import (
	"fmt"

	"github.com/localstack/dockhand/internal/config"
	"github.com/localstack/dockhand/internal/env"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.ConfigFilePath()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), configPath)
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  "Print the settings the next run would use, after config file and environment overrides.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Get()
		if err != nil {
			return err
		}

		dockerHost := env.Vars.DockerHost
		if dockerHost == "" {
			dockerHost = "(default socket)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "docker host:   %s\n", dockerHost)
		fmt.Fprintf(out, "default tag:   %s\n", cfg.Defaults.Tag)
		fmt.Fprintf(out, "slug length:   %d\n", cfg.Defaults.SlugLength)
		fmt.Fprintf(out, "pull on build: %v\n", cfg.Defaults.Pull)
		fmt.Fprintf(out, "otlp endpoint: %s\n", cfg.OTLPEndpoint)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
