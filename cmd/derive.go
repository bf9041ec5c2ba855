package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threefoldtech/stellar-examples/client"
	"github.com/threefoldtech/stellar-examples/errors"
)

type DeriveConfig struct {
	Mnemonic    string
	Amount      int
	ShowSecrets bool
}

func newDeriveCmd(rootConfig *RootConfig) *cobra.Command {
	var deriveConfig DeriveConfig

	deriveCmd := &cobra.Command{
		Use:   "derive-addresses",
		Short: "Derive addresses from a BIP-39 mnemonic",
		Long: `Derives a list of addresses from a BIP-39 mnemonic. The same mnemonic always
yields the same addresses. Without --mnemonic a new 24 word one is generated and
printed. Shorter mnemonics (12 to 21 words) are accepted and their entropy is zero
padded to 32 bytes, so a 12 word mnemonic of all zero entropy derives the same
addresses as the 24 word one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deriveConfig.Amount <= 0 {
				return errors.NewError(errors.ErrCodeInvalidAmount, "amount of addresses must be positive")
			}

			out := cmd.OutOrStdout()
			var entropy []byte
			var err error
			if deriveConfig.Mnemonic == "" {
				var mnemonic string
				mnemonic, entropy, err = client.NewMnemonic()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Mnemonic: %s\n", mnemonic)
			} else {
				entropy, err = client.EntropyFromMnemonic(deriveConfig.Mnemonic)
				if err != nil {
					return err
				}
			}

			for i := 0; i < deriveConfig.Amount; i++ {
				kp, err := client.DeriveKeypair(entropy, uint64(i))
				if err != nil {
					return err
				}
				if deriveConfig.ShowSecrets {
					fmt.Fprintf(out, "%d %s %s\n", i, kp.Address(), kp.Seed())
					continue
				}
				fmt.Fprintf(out, "%d %s\n", i, kp.Address())
			}
			return nil
		},
	}

	deriveCmd.Flags().StringVar(&deriveConfig.Mnemonic, "mnemonic", "", "BIP-39 mnemonic of 12 to 24 words, entropy zero padded to 32 bytes (generated when empty)")
	deriveCmd.Flags().IntVar(&deriveConfig.Amount, "amount", 1, "number of addresses to derive")
	deriveCmd.Flags().BoolVar(&deriveConfig.ShowSecrets, "secrets", false, "also print the secret keys")
	return deriveCmd
}
