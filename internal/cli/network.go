package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/localstack/dockhand"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage throwaway networks",
}

var networkCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a network",
	Long:  "Create a bridge network. Without a name, a random one is generated.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		if name == "" {
			name = defaultNetworkName()
		}

		n, err := dockhand.NewNetwork(cmd.Context(), name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", n.ID(), n.Name())
		return err
	},
}

var networkRmCmd = &cobra.Command{
	Use:   "rm <network-id>",
	Short: "Remove a network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dockhand.Default()
		if err != nil {
			return err
		}
		return client.RemoveNetwork(cmd.Context(), args[0])
	},
}

func defaultNetworkName() string {
	return "dockhand-" + uuid.NewString()[:8]
}

func init() {
	networkCmd.AddCommand(networkCreateCmd)
	networkCmd.AddCommand(networkRmCmd)
	rootCmd.AddCommand(networkCmd)
}
