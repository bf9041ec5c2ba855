package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/threefoldtech/stellar-examples/client"
)

type CheckAccountConfig struct {
	Address string
	Output  string
}

func newCheckAccountCmd(rootConfig *RootConfig) *cobra.Command {
	var checkConfig CheckAccountConfig

	checkCmd := &cobra.Command{
		Use:   "check-account",
		Short: "Show balances, sequence, flags, signers and data of an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(checkConfig.Output); err != nil {
				return err
			}
			if err := client.ValidateAddress(checkConfig.Address); err != nil {
				return err
			}

			c, err := newStellarClient(rootConfig.cfg)
			if err != nil {
				return err
			}
			account, err := c.GetAccount(checkConfig.Address)
			if err != nil {
				return err
			}

			summary := client.NewAccountSummary(account)
			return writeOutput(cmd.OutOrStdout(), checkConfig.Output, summary, func(w io.Writer) {
				printAccountSummary(w, summary)
			})
		},
	}

	checkCmd.Flags().StringVar(&checkConfig.Address, "address", "", "address to check")
	checkCmd.Flags().StringVarP(&checkConfig.Output, "output", "o", OutputText, "output format: text, json or yaml")
	_ = checkCmd.MarkFlagRequired("address")
	return checkCmd
}

func printAccountSummary(w io.Writer, summary client.AccountSummary) {
	fmt.Fprintln(w, "Balances:")
	printBalances(w, summary.Balances)

	fmt.Fprintf(w, "Sequence Number: %d\n", summary.Sequence)

	f := summary.Flags
	fmt.Fprintf(w, "Flags: auth_required=%t auth_revocable=%t auth_immutable=%t auth_clawback_enabled=%t\n",
		f.AuthRequired, f.AuthRevocable, f.AuthImmutable, f.AuthClawbackEnabled)

	fmt.Fprintln(w, "Signers:")
	for _, s := range summary.Signers {
		fmt.Fprintf(w, "  %s weight %d (%s)\n", s.Key, s.Weight, s.Type)
	}

	fmt.Fprintln(w, "Data:")
	keys := make([]string, 0, len(summary.Data))
	for k := range summary.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, summary.Data[k])
	}
}

func printBalances(w io.Writer, balances []client.Balance) {
	for _, b := range balances {
		if b.Limit != "" {
			fmt.Fprintf(w, "  %s %s (limit %s)\n", b.Asset, b.Balance, b.Limit)
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", b.Asset, b.Balance)
	}
}
