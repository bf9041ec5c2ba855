package cmd

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/threefoldtech/stellar-examples/client"
	"github.com/threefoldtech/stellar-examples/config"
	"github.com/threefoldtech/stellar-examples/errors"
	"github.com/threefoldtech/stellar-examples/logx"
)

const defaultAccountName = "default"

func newAccountsCmd(rootConfig *RootConfig) *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage named accounts in the keystore",
		Long: `Named accounts live in a TOML keystore (--keystore, default config.toml):

  [alice]
  seed = "SB..."

Commands that take --sourcekey also accept --source <name>.`,
	}

	accountsCmd.AddCommand(
		newAccountsNewCmd(rootConfig),
		newAccountsListCmd(rootConfig),
		newAccountsBalancesCmd(rootConfig),
	)
	return accountsCmd
}

func loadKeystore(rootConfig *RootConfig) (*config.Keystore, error) {
	ks, err := config.LoadKeystore(rootConfig.cfg.Keystore)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInvalidRequest, "failed to load keystore", err)
	}
	return ks, nil
}

func newAccountsNewCmd(rootConfig *RootConfig) *cobra.Command {
	var name string

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a keypair and store it under a name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore(rootConfig)
			if err != nil {
				return err
			}
			kp, err := client.NewKeypair()
			if err != nil {
				return err
			}
			if err := ks.Add(name, kp.Seed()); err != nil {
				if pkgerrors.Is(err, config.ErrAccountExists) {
					return errors.NewError(errors.ErrCodeInvalidRequest,
						fmt.Sprintf("account %q already exists in %s", name, ks.Path()))
				}
				return errors.WrapError(errors.ErrCodeInvalidRequest, "failed to add account", err)
			}
			if err := ks.Save(); err != nil {
				return errors.WrapError(errors.ErrCodeInternal, "failed to save keystore", err)
			}

			logx.Info("ACCOUNTS CLI", "stored account ", name, " in ", ks.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "Key: %s\n", kp.Seed())
			fmt.Fprintf(cmd.OutOrStdout(), "Address: %s\n", kp.Address())
			return nil
		},
	}

	newCmd.Flags().StringVar(&name, "name", defaultAccountName, "name of the account")
	return newCmd
}

func newAccountsListCmd(rootConfig *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore(rootConfig)
			if err != nil {
				return err
			}
			for _, name := range ks.Names() {
				kp, err := ks.KeyPair(name)
				if err != nil {
					logx.Warn("ACCOUNTS CLI", err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, kp.Address())
			}
			return nil
		},
	}
}

func newAccountsBalancesCmd(rootConfig *RootConfig) *cobra.Command {
	var name string

	balancesCmd := &cobra.Command{
		Use:   "balances",
		Short: "Show the balances of one or all stored accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore(rootConfig)
			if err != nil {
				return err
			}

			names := ks.Names()
			if name != "" {
				names = []string{name}
			}

			c, err := newStellarClient(rootConfig.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, n := range names {
				kp, err := ks.KeyPair(n)
				if err != nil {
					if name != "" {
						return errors.WrapError(errors.ErrCodeInvalidKey, fmt.Sprintf("account %q", n), err)
					}
					logx.Error("ACCOUNTS CLI", err)
					continue
				}
				account, err := c.GetAccount(kp.Address())
				if err != nil {
					if name != "" {
						return err
					}
					logx.Error("ACCOUNTS CLI", "skipping ", n, ": ", err)
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", n, describeError(err))
					continue
				}
				fmt.Fprintf(out, "%s (%s):\n", n, kp.Address())
				printBalances(out, client.NewAccountSummary(account).Balances)
			}
			return nil
		},
	}

	balancesCmd.Flags().StringVar(&name, "name", "", "only show this account")
	return balancesCmd
}

func describeError(err error) string {
	if ce, ok := errors.AsClientError(err); ok {
		return ce.Message
	}
	return err.Error()
}
