package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/threefoldtech/stellar-examples/client"
	"github.com/threefoldtech/stellar-examples/logx"
)

type TransferConfig struct {
	SourceKey   string
	Source      string
	Destination string
	Amount      int64
	Asset       string
}

func newTransferCmd(rootConfig *RootConfig) *cobra.Command {
	var transferConfig TransferConfig

	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer XLM or a credit asset to another account",
		Long: `Sends a payment from the source account to the destination address.
Without --asset the native asset (XLM) is sent, otherwise --asset takes the
form code:issuer.

Examples:
  # Send 10 XLM
  stellarx transfer --sourcekey SB... --destinationaddress GC... --amount 10

  # Send 5 TFT
  stellarx transfer --source alice --destinationaddress GC... --amount 5 --asset TFT:GB...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return transfer(cmd, rootConfig, transferConfig)
		},
	}

	addSourceFlags(transferCmd, &transferConfig.SourceKey, &transferConfig.Source)
	transferCmd.Flags().StringVar(&transferConfig.Destination, "destinationaddress", "", "address receiving the payment")
	transferCmd.Flags().Int64Var(&transferConfig.Amount, "amount", 0, "amount to transfer")
	transferCmd.Flags().StringVar(&transferConfig.Asset, "asset", "", "asset to transfer, format code:issuer (default native XLM)")
	_ = transferCmd.MarkFlagRequired("destinationaddress")
	_ = transferCmd.MarkFlagRequired("amount")
	return transferCmd
}

func transfer(cmd *cobra.Command, rootConfig *RootConfig, transferConfig TransferConfig) error {
	signer, err := resolveSigner(rootConfig.cfg, transferConfig.SourceKey, transferConfig.Source)
	if err != nil {
		return err
	}
	asset, err := client.ParseAsset(transferConfig.Asset)
	if err != nil {
		return err
	}
	if err := client.ValidateAddress(transferConfig.Destination); err != nil {
		return err
	}
	amount := strconv.FormatInt(transferConfig.Amount, 10)
	if err := client.ValidateAmount(amount); err != nil {
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

	logx.Debug("TRANSFER CLI", "sending ", amount, " ", asset.String(), " to ", transferConfig.Destination)
	tx, err := client.BuildPaymentTx(&sourceAccount, transferConfig.Destination, amount, asset,
		client.TxParams{BaseFee: c.BaseFee(), Timeout: rootConfig.cfg.TxTimeout})
	if err != nil {
		return err
	}
	return signAndSubmit(cmd.OutOrStdout(), c, tx, signer, true)
}
