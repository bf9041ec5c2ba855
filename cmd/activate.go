package cmd

import (
	"github.com/spf13/cobra"

	"github.com/threefoldtech/stellar-examples/client"
)

const defaultStartingBalance = "12.25"

type ActivateConfig struct {
	SourceKey       string
	Source          string
	Destination     string
	DestinationName string
	StartingBalance string
}

func newActivateCmd(rootConfig *RootConfig) *cobra.Command {
	var activateConfig ActivateConfig

	activateCmd := &cobra.Command{
		Use:   "activate-account",
		Short: "Create a new account funded by the source account",
		Long: `Creates the destination account with a starting balance paid by the source
account. The source is given as a secret key (--sourcekey) or as the name of a
keystore account (--source). The destination is an address (--destinationaddress)
or the name of a keystore account (--name).

Example:
  stellarx activate-account --sourcekey SB... --destinationaddress GC...
  stellarx activate-account --source default --name alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return activateAccount(cmd, rootConfig, activateConfig)
		},
	}

	addSourceFlags(activateCmd, &activateConfig.SourceKey, &activateConfig.Source)
	addAddressFlags(activateCmd, "destinationaddress", "address of the account to activate",
		&activateConfig.Destination, &activateConfig.DestinationName)
	activateCmd.Flags().StringVar(&activateConfig.StartingBalance, "startingbalance", defaultStartingBalance, "XLM sent to the new account")
	return activateCmd
}

func activateAccount(cmd *cobra.Command, rootConfig *RootConfig, activateConfig ActivateConfig) error {
	signer, err := resolveSigner(rootConfig.cfg, activateConfig.SourceKey, activateConfig.Source)
	if err != nil {
		return err
	}
	destination, err := resolveAddress(rootConfig.cfg, activateConfig.Destination, activateConfig.DestinationName)
	if err != nil {
		return err
	}
	if err := client.ValidateAddress(destination); err != nil {
		return err
	}
	if err := client.ValidateAmount(activateConfig.StartingBalance); err != nil {
		return err
	}

	c, err := newStellarClient(rootConfig.cfg)
	if err != nil {
		return err
	}
	sourceAccount, err := c.GetAccount(signer.Address())
	if err != nil {
		return err
	}

	// no upper time bound, configured fee
	tx, err := client.BuildCreateAccountTx(&sourceAccount, destination, activateConfig.StartingBalance,
		client.TxParams{BaseFee: rootConfig.cfg.BaseFee})
	if err != nil {
		return err
	}
	return signAndSubmit(cmd.OutOrStdout(), c, tx, signer, false)
}
