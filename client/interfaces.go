package client

import (
	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"
)

// HorizonClient is the subset of the horizon API the commands rely on.
// Both *horizonclient.Client and *horizonclient.MockClient satisfy it.
type HorizonClient interface {
	AccountDetail(request horizonclient.AccountRequest) (hProtocol.Account, error)
	FeeStats() (hProtocol.FeeStats, error)
	SubmitTransaction(transaction *txnbuild.Transaction) (hProtocol.Transaction, error)
}

var (
	_ HorizonClient = (*horizonclient.Client)(nil)
	_ HorizonClient = (*horizonclient.MockClient)(nil)
)
