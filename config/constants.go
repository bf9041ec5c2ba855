package config

import (
	"time"

	"github.com/stellar/go/network"
	"github.com/stellar/go/txnbuild"
)

const (
	NetworkTestnet = "testnet"
	NetworkPublic  = "public"
)

const (
	TestnetHorizonURL   = "https://horizon-testnet.stellar.org"
	PublicHorizonURL    = "https://horizon.stellar.org"
	TestnetFriendbotURL = "https://friendbot.stellar.org"

	DefaultBaseFee      int64 = txnbuild.MinBaseFee
	DefaultTimeout            = 30 * time.Second
	DefaultTxTimeout          = 30 * time.Second
	DefaultKeystorePath       = "config.toml"

	EnvPrefix = "STELLARX"
)

// NetworkPreset holds the endpoints and passphrase of a known Stellar network.
type NetworkPreset struct {
	HorizonURL   string
	FriendbotURL string
	Passphrase   string
}

// NetworkPresets lists the networks selectable with --network.
// The public network has no friendbot.
var NetworkPresets = map[string]NetworkPreset{
	NetworkTestnet: {
		HorizonURL:   TestnetHorizonURL,
		FriendbotURL: TestnetFriendbotURL,
		Passphrase:   network.TestNetworkPassphrase,
	},
	NetworkPublic: {
		HorizonURL: PublicHorizonURL,
		Passphrase: network.PublicNetworkPassphrase,
	},
}
