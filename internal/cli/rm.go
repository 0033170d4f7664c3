package cli

import (
	"github.com/localstack/dockhand"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <container-id>",
	Short: "Force-remove a container",
	Long:  "Force-remove a container by ID, whether or not it is running.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dockhand.Default()
		if err != nil {
			return err
		}
		return client.RemoveContainer(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
