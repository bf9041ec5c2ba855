package client

import (
	"encoding/binary"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/txnbuild"
	bip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/blake2b"

	"github.com/threefoldtech/stellar-examples/errors"
)

const (
	entropyBits = 256
	seedSize    = 32
)

// NewKeypair generates a random keypair.
func NewKeypair() (*keypair.Full, error) {
	kp, err := keypair.Random()
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInternal, "failed to generate keypair", err)
	}
	return kp, nil
}

// ParseSecret parses an S... secret seed.
func ParseSecret(secret string) (*keypair.Full, error) {
	if !strkey.IsValidEd25519SecretSeed(secret) {
		return nil, errors.NewError(errors.ErrCodeInvalidKey, errors.ErrMsgInvalidKey)
	}
	kp, err := keypair.ParseFull(secret)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInvalidKey, errors.ErrMsgInvalidKey, err)
	}
	return kp, nil
}

func SignTx(tx *txnbuild.Transaction, passphrase string, signer *keypair.Full) (*txnbuild.Transaction, error) {
	signed, err := tx.Sign(passphrase, signer)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInternal, "failed to sign transaction", err)
	}
	return signed, nil
}

// NewMnemonic returns a fresh 24 word mnemonic and its entropy.
func NewMnemonic() (string, []byte, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", nil, errors.WrapError(errors.ErrCodeInternal, "failed to read entropy", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", nil, errors.WrapError(errors.ErrCodeInternal, "failed to encode mnemonic", err)
	}
	return mnemonic, entropy, nil
}

func EntropyFromMnemonic(mnemonic string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInvalidKey, "invalid mnemonic", err)
	}
	return entropy, nil
}

// DeriveKeypair returns keypair number index of the wallet seeded by entropy:
// blake2b-256(seed || uint64le(index)), where seed is entropy zero padded to 32 bytes.
func DeriveKeypair(entropy []byte, index uint64) (*keypair.Full, error) {
	buf := make([]byte, seedSize+8)
	copy(buf[:seedSize], entropy)
	binary.LittleEndian.PutUint64(buf[seedSize:], index)

	kp, err := keypair.FromRawSeed(blake2b.Sum256(buf))
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInternal, "failed to derive keypair", err)
	}
	return kp, nil
}
