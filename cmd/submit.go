package cmd

import (
	"fmt"
	"io"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"github.com/threefoldtech/stellar-examples/client"
	"github.com/threefoldtech/stellar-examples/errors"
)

// signAndSubmit signs tx, optionally prints its envelope, submits it once and
// prints the hash followed by the horizon response.
func signAndSubmit(w io.Writer, c *client.StellarClient, tx *txnbuild.Transaction, signer *keypair.Full, printEnvelope bool) error {
	signed, err := client.SignTx(tx, c.Passphrase(), signer)
	if err != nil {
		return err
	}

	if printEnvelope {
		envelope, err := signed.Base64()
		if err != nil {
			return errors.WrapError(errors.ErrCodeInternal, "failed to encode transaction envelope", err)
		}
		fmt.Fprintln(w, envelope)
	}

	resp, err := c.Submit(signed)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Transaction hash: %s\n", resp.Hash)
	printResponse(w, resp)
	return nil
}
