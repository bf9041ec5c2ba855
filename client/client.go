package client

import (
	"net/http"

	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"

	"github.com/threefoldtech/stellar-examples/config"
	"github.com/threefoldtech/stellar-examples/errors"
	"github.com/threefoldtech/stellar-examples/logx"
	"github.com/threefoldtech/stellar-examples/utils"
)

type StellarClient struct {
	cfg     *config.Config
	horizon HorizonClient
	http    *http.Client
}

// NewClient builds a client bound to the configured horizon and friendbot endpoints.
// Every request is bounded by cfg.Timeout.
func NewClient(cfg *config.Config) (*StellarClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapError(errors.ErrCodeInvalidRequest, errors.ErrMsgInvalidRequest, err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	horizon := &horizonclient.Client{
		HorizonURL: cfg.HorizonURL,
		HTTP:       httpClient,
	}
	return NewClientWith(cfg, horizon, httpClient), nil
}

// NewClientWith wires an existing horizon client and http client.
func NewClientWith(cfg *config.Config, horizon HorizonClient, httpClient *http.Client) *StellarClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &StellarClient{
		cfg:     cfg,
		horizon: horizon,
		http:    httpClient,
	}
}

func (c *StellarClient) Config() *config.Config {
	return c.cfg
}

func (c *StellarClient) Passphrase() string {
	return c.cfg.NetworkPassphrase
}

// GetAccount loads the current state of address from horizon.
func (c *StellarClient) GetAccount(address string) (hProtocol.Account, error) {
	if err := ValidateAddress(address); err != nil {
		return hProtocol.Account{}, err
	}

	logx.Debug("CLIENT", "loading account ", utils.ShortenLog(address))
	account, err := c.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		return hProtocol.Account{}, errors.FromHorizon(err)
	}
	return account, nil
}

// BaseFee returns the last ledger base fee, never below the configured fee.
// The configured fee is used when fee stats cannot be fetched.
func (c *StellarClient) BaseFee() int64 {
	stats, err := c.horizon.FeeStats()
	if err != nil {
		logx.Warn("CLIENT", "fee stats unavailable, using base fee ", c.cfg.BaseFee, ": ", err)
		return c.cfg.BaseFee
	}
	if stats.LastLedgerBaseFee < c.cfg.BaseFee {
		return c.cfg.BaseFee
	}
	return stats.LastLedgerBaseFee
}

// Submit sends a signed transaction to horizon exactly once.
func (c *StellarClient) Submit(tx *txnbuild.Transaction) (hProtocol.Transaction, error) {
	hash, err := tx.HashHex(c.cfg.NetworkPassphrase)
	if err == nil {
		logx.Info("CLIENT", "submitting transaction ", utils.ShortenLog(hash))
	}

	resp, err := c.horizon.SubmitTransaction(tx)
	if err != nil {
		logx.Error("CLIENT", "submit failed: ", err)
		return hProtocol.Transaction{}, errors.FromHorizon(err)
	}
	logx.Info("CLIENT", "transaction ", utils.ShortenLog(resp.Hash), " included in ledger ", resp.Ledger)
	return resp, nil
}
