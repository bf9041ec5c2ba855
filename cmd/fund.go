package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threefoldtech/stellar-examples/logx"
)

type FundConfig struct {
	Address string
	Name    string
}

func newFundCmd(rootConfig *RootConfig) *cobra.Command {
	var fundConfig FundConfig

	fundCmd := &cobra.Command{
		Use:   "fund-account",
		Short: "Fund a test network account through friendbot",
		Long: `Asks friendbot to create and fund the given address on the test network.
The account is given as an address (--address) or as the name of a keystore
account (--name). When friendbot refuses, its response body is printed and the
command fails.

Example:
  stellarx fund-account --address GB...
  stellarx fund-account --name alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := resolveAddress(rootConfig.cfg, fundConfig.Address, fundConfig.Name)
			if err != nil {
				return err
			}
			c, err := newStellarClient(rootConfig.cfg)
			if err != nil {
				return err
			}
			if _, err := c.Fund(cmd.Context(), address); err != nil {
				return err
			}
			logx.Info("FUND CLI", "funded ", address)
			fmt.Fprintf(cmd.OutOrStdout(), "account with address: %s funded through friendbot\n", address)
			return nil
		},
	}

	addAddressFlags(fundCmd, "address", "address of the account to fund", &fundConfig.Address, &fundConfig.Name)
	return fundCmd
}
