package client

import (
	"strings"
	"testing"

	"github.com/stellar/go/strkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threefoldtech/stellar-examples/errors"
)

func TestNewKeypair(t *testing.T) {
	first, err := NewKeypair()
	require.NoError(t, err)
	second, err := NewKeypair()
	require.NoError(t, err)

	for _, kp := range []interface {
		Seed() string
		Address() string
	}{first, second} {
		assert.Len(t, kp.Seed(), 56)
		assert.Len(t, kp.Address(), 56)
		assert.True(t, strings.HasPrefix(kp.Seed(), "S"))
		assert.True(t, strings.HasPrefix(kp.Address(), "G"))
		assert.True(t, strkey.IsValidEd25519SecretSeed(kp.Seed()))
		assert.True(t, strkey.IsValidEd25519PublicKey(kp.Address()))
	}
	assert.NotEqual(t, first.Seed(), second.Seed())
	assert.NotEqual(t, first.Address(), second.Address())
}

func TestParseSecret(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	parsed, err := ParseSecret(kp.Seed())
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), parsed.Address())

	_, err = ParseSecret(kp.Address())
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidKey))
	_, err = ParseSecret("")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidKey))
}

func TestMnemonicDerivationIsDeterministic(t *testing.T) {
	mnemonic, entropy, err := NewMnemonic()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(mnemonic), 24)
	assert.Len(t, entropy, 32)

	recovered, err := EntropyFromMnemonic(mnemonic)
	require.NoError(t, err)
	assert.Equal(t, entropy, recovered)

	seen := map[string]bool{}
	for i := uint64(0); i < 5; i++ {
		a, err := DeriveKeypair(entropy, i)
		require.NoError(t, err)
		b, err := DeriveKeypair(recovered, i)
		require.NoError(t, err)
		assert.Equal(t, a.Address(), b.Address())
		assert.False(t, seen[a.Address()], "index %d repeats an address", i)
		seen[a.Address()] = true
	}
}

func TestDeriveKnownVector(t *testing.T) {
	// all-zero entropy, index 0
	entropy, err := EntropyFromMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art")
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 32), entropy)

	a, err := DeriveKeypair(entropy, 0)
	require.NoError(t, err)
	b, err := DeriveKeypair(make([]byte, 16), 0)
	require.NoError(t, err)
	assert.Equal(t, a.Address(), b.Address(), "shorter entropy is zero padded")
}

func TestEntropyFromMnemonicRejectsGarbage(t *testing.T) {
	_, err := EntropyFromMnemonic("not a real mnemonic")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidKey))
}
