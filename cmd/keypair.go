package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threefoldtech/stellar-examples/client"
)

func newCreateKeypairCmd(rootConfig *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "create-keypair",
		Short: "Generate a random keypair",
		Long: `Generates a random Stellar keypair and prints its secret key and address.
Nothing is sent to the network and nothing is stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := client.NewKeypair()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key: %s\n", kp.Seed())
			fmt.Fprintf(cmd.OutOrStdout(), "Address: %s\n", kp.Address())
			return nil
		},
	}
}
