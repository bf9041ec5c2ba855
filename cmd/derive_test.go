package cmd

import (
	"strings"
	"testing"

	"github.com/stellar/go/strkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zeroMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"

func TestDeriveAddressesIsDeterministic(t *testing.T) {
	first := execute(t, "derive-addresses", "--mnemonic", zeroMnemonic, "--amount", "3")
	require.Equal(t, 0, first.code, first.stderr)
	second := execute(t, "derive-addresses", "--mnemonic", zeroMnemonic, "--amount", "3")
	require.Equal(t, 0, second.code, second.stderr)
	assert.Equal(t, first.stdout, second.stdout)

	lines := strings.Split(strings.TrimSpace(first.stdout), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		fields := strings.Fields(line)
		require.Len(t, fields, 2)
		assert.Equal(t, []string{"0", "1", "2"}[i], fields[0])
		assert.True(t, strkey.IsValidEd25519PublicKey(fields[1]))
	}
}

func TestDeriveAddressesPadsShortMnemonic(t *testing.T) {
	short := strings.Repeat("abandon ", 11) + "about"

	res := execute(t, "derive-addresses", "--mnemonic", short, "--amount", "2")
	require.Equal(t, 0, res.code, res.stderr)
	full := execute(t, "derive-addresses", "--mnemonic", zeroMnemonic, "--amount", "2")
	require.Equal(t, 0, full.code, full.stderr)
	assert.Equal(t, full.stdout, res.stdout)

	help := execute(t, "derive-addresses", "--help")
	require.Equal(t, 0, help.code, help.stderr)
	assert.Contains(t, help.stdout, "zero padded to 32 bytes")
}

func TestDeriveAddressesWithSecrets(t *testing.T) {
	res := execute(t, "derive-addresses", "--mnemonic", zeroMnemonic, "--secrets")
	require.Equal(t, 0, res.code, res.stderr)
	fields := strings.Fields(strings.TrimSpace(res.stdout))
	require.Len(t, fields, 3)
	assert.True(t, strkey.IsValidEd25519SecretSeed(fields[2]))
}

func TestDeriveAddressesGeneratesMnemonic(t *testing.T) {
	res := execute(t, "derive-addresses", "--amount", "2")
	require.Equal(t, 0, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "Mnemonic: "))
	mnemonic := strings.TrimPrefix(lines[0], "Mnemonic: ")
	assert.Len(t, strings.Fields(mnemonic), 24)

	again := execute(t, "derive-addresses", "--amount", "2", "--mnemonic", mnemonic)
	require.Equal(t, 0, again.code, again.stderr)
	assert.Equal(t, strings.Join(lines[1:], "\n")+"\n", again.stdout)
}

func TestDeriveAddressesValidation(t *testing.T) {
	res := execute(t, "derive-addresses", "--mnemonic", zeroMnemonic, "--amount", "0")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "must be positive")

	res = execute(t, "derive-addresses", "--mnemonic", "one two three")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid mnemonic")
}
