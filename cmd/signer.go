package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stellar/go/keypair"

	"github.com/threefoldtech/stellar-examples/client"
	"github.com/threefoldtech/stellar-examples/config"
	"github.com/threefoldtech/stellar-examples/errors"
)

// addSourceFlags registers --sourcekey and --source. Exactly one of them is required.
func addSourceFlags(cmd *cobra.Command, sourceKey, source *string) {
	cmd.Flags().StringVar(sourceKey, "sourcekey", "", "secret key of the source account")
	cmd.Flags().StringVar(source, "source", "", "name of a keystore account to use as source")
	cmd.MarkFlagsMutuallyExclusive("sourcekey", "source")
	cmd.MarkFlagsOneRequired("sourcekey", "source")
}

// resolveSigner returns the source keypair from a secret key or a keystore name.
func resolveSigner(cfg *config.Config, sourceKey, source string) (*keypair.Full, error) {
	if sourceKey != "" {
		return client.ParseSecret(sourceKey)
	}

	ks, err := config.LoadKeystore(cfg.Keystore)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInvalidRequest, "failed to load keystore", err)
	}
	kp, err := ks.KeyPair(source)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInvalidKey,
			fmt.Sprintf("no usable account %q in %s", source, ks.Path()), err)
	}
	return kp, nil
}

// addAddressFlags registers an address flag and --name. Exactly one of them is required.
func addAddressFlags(cmd *cobra.Command, addressFlag, usage string, address, name *string) {
	cmd.Flags().StringVar(address, addressFlag, "", usage)
	cmd.Flags().StringVar(name, "name", "", "name of a keystore account to use instead of "+addressFlag)
	cmd.MarkFlagsMutuallyExclusive(addressFlag, "name")
	cmd.MarkFlagsOneRequired(addressFlag, "name")
}

// resolveAddress returns address as given, or the address of the named keystore account.
func resolveAddress(cfg *config.Config, address, name string) (string, error) {
	if address != "" {
		return address, nil
	}

	ks, err := config.LoadKeystore(cfg.Keystore)
	if err != nil {
		return "", errors.WrapError(errors.ErrCodeInvalidRequest, "failed to load keystore", err)
	}
	kp, err := ks.KeyPair(name)
	if err != nil {
		return "", errors.WrapError(errors.ErrCodeInvalidAddress,
			fmt.Sprintf("no usable account %q in %s", name, ks.Path()), err)
	}
	return kp.Address(), nil
}
