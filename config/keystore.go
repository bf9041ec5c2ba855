package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/stellar/go/keypair"
)

// KeystoreEntry is one named account in the keystore file.
type KeystoreEntry struct {
	Seed string `toml:"seed"`
}

// Keystore maps account names to secret seeds, persisted as TOML:
//
//	[alice]
//	seed = "S..."
type Keystore struct {
	path     string
	accounts map[string]KeystoreEntry
}

var ErrAccountNotFound = errors.New("account not found in keystore")
var ErrAccountExists = errors.New("account already exists in keystore")

// LoadKeystore reads the keystore at path. A missing file yields an empty keystore.
func LoadKeystore(path string) (*Keystore, error) {
	ks := &Keystore{path: path, accounts: map[string]KeystoreEntry{}}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ks, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read keystore %s", path)
	}
	if err := toml.Unmarshal(data, &ks.accounts); err != nil {
		return nil, errors.Wrapf(err, "parse keystore %s", path)
	}
	return ks, nil
}

func (k *Keystore) Path() string {
	return k.path
}

// Add stores seed under name. Existing names are never overwritten.
func (k *Keystore) Add(name, seed string) error {
	if name == "" {
		return errors.New("account name cannot be empty")
	}
	if _, ok := k.accounts[name]; ok {
		return errors.Wrapf(ErrAccountExists, "account %s", name)
	}
	if _, err := keypair.ParseFull(seed); err != nil {
		return errors.Wrapf(err, "account %s", name)
	}
	k.accounts[name] = KeystoreEntry{Seed: seed}
	return nil
}

// Names returns the stored account names in sorted order.
func (k *Keystore) Names() []string {
	names := make([]string, 0, len(k.accounts))
	for name := range k.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KeyPair returns the full keypair stored under name.
func (k *Keystore) KeyPair(name string) (*keypair.Full, error) {
	entry, ok := k.accounts[name]
	if !ok {
		return nil, errors.Wrapf(ErrAccountNotFound, "account %s", name)
	}
	kp, err := keypair.ParseFull(entry.Seed)
	if err != nil {
		return nil, errors.Wrapf(err, "account %s has an invalid seed", name)
	}
	return kp, nil
}

// Save writes the keystore back to disk, readable by the owner only.
func (k *Keystore) Save() error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(k.accounts); err != nil {
		return errors.Wrap(err, "encode keystore")
	}
	if dir := filepath.Dir(k.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrapf(err, "create keystore directory %s", dir)
		}
	}
	if err := os.WriteFile(k.path, buf.Bytes(), 0o600); err != nil {
		return errors.Wrapf(err, "write keystore %s", k.path)
	}
	return nil
}
