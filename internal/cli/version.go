package cli

import (
	"fmt"

	"github.com/localstack/dockhand/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dockhand version",
	Long:  "Print version information for the dockhand binary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), versionLine())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func versionLine() string {
	return fmt.Sprintf("dockhand %s (%s, %s)", version.Version(), version.Commit(), version.BuildDate())
}
