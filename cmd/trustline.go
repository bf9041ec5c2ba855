package cmd

import (
	"github.com/spf13/cobra"

	"github.com/threefoldtech/stellar-examples/client"
)

type TrustlineConfig struct {
	SourceKey string
	Source    string
	Issuer    string
	AssetCode string
	Limit     string
}

func newTrustlineCmd(rootConfig *RootConfig) *cobra.Command {
	var trustlineConfig TrustlineConfig

	trustlineCmd := &cobra.Command{
		Use:   "create-trustline",
		Short: "Allow the source account to hold a credit asset",
		Long: `Creates or updates a trustline from the source account to asset code:issuer.
Without --limit the maximum trust limit is used; a limit of 0 removes the trustline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := resolveSigner(rootConfig.cfg, trustlineConfig.SourceKey, trustlineConfig.Source)
			if err != nil {
				return err
			}
			asset, err := client.NewCreditAsset(trustlineConfig.AssetCode, trustlineConfig.Issuer)
			if err != nil {
				return err
			}
			if err := client.ValidateTrustLimit(trustlineConfig.Limit); err != nil {
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

			tx, err := client.BuildChangeTrustTx(&sourceAccount, asset, trustlineConfig.Limit,
				client.TxParams{BaseFee: c.BaseFee(), Timeout: rootConfig.cfg.TxTimeout})
			if err != nil {
				return err
			}
			return signAndSubmit(cmd.OutOrStdout(), c, tx, signer, true)
		},
	}

	addSourceFlags(trustlineCmd, &trustlineConfig.SourceKey, &trustlineConfig.Source)
	trustlineCmd.Flags().StringVar(&trustlineConfig.Issuer, "issueraddress", "", "address of the asset issuer")
	trustlineCmd.Flags().StringVar(&trustlineConfig.AssetCode, "assetcode", "", "asset code, 1 to 12 alphanumeric characters")
	trustlineCmd.Flags().StringVar(&trustlineConfig.Limit, "limit", "", "maximum amount the account may hold (default the maximum)")
	_ = trustlineCmd.MarkFlagRequired("issueraddress")
	_ = trustlineCmd.MarkFlagRequired("assetcode")
	return trustlineCmd
}
