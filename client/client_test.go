package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/support/render/problem"
	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/threefoldtech/stellar-examples/config"
	"github.com/threefoldtech/stellar-examples/errors"
)

func newTestClient(t *testing.T, friendbotURL string) (*StellarClient, *horizonclient.MockClient) {
	t.Helper()
	cfg := config.Default(config.NetworkTestnet)
	cfg.FriendbotURL = friendbotURL
	cfg.Timeout = 5 * time.Second
	hmock := &horizonclient.MockClient{}
	return NewClientWith(cfg, hmock, nil), hmock
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default(config.NetworkTestnet)
	cfg.HorizonURL = "not a url"
	_, err := NewClient(cfg)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))

	c, err := NewClient(config.Default(config.NetworkTestnet))
	require.NoError(t, err)
	assert.Equal(t, config.Default(config.NetworkTestnet).NetworkPassphrase, c.Passphrase())
}

func TestGetAccount(t *testing.T) {
	c, hmock := newTestClient(t, "")
	address := keypair.MustRandom().Address()

	hmock.On("AccountDetail", horizonclient.AccountRequest{AccountID: address}).
		Return(hProtocol.Account{AccountID: address, Sequence: 7}, nil)

	account, err := c.GetAccount(address)
	require.NoError(t, err)
	assert.Equal(t, address, account.AccountID)
	hmock.AssertExpectations(t)
}

func TestGetAccountNotFound(t *testing.T) {
	c, hmock := newTestClient(t, "")
	address := keypair.MustRandom().Address()

	hmock.On("AccountDetail", horizonclient.AccountRequest{AccountID: address}).
		Return(hProtocol.Account{}, &horizonclient.Error{Problem: problem.P{Status: http.StatusNotFound, Title: "Resource Missing"}})

	_, err := c.GetAccount(address)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAccountNotFound))
}

func TestGetAccountValidatesBeforeCalling(t *testing.T) {
	c, hmock := newTestClient(t, "")
	_, err := c.GetAccount("nope")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidAddress))
	hmock.AssertNotCalled(t, "AccountDetail", mock.Anything)
}

func TestBaseFee(t *testing.T) {
	c, hmock := newTestClient(t, "")
	hmock.On("FeeStats").Return(hProtocol.FeeStats{LastLedgerBaseFee: 250}, nil).Once()
	assert.Equal(t, int64(250), c.BaseFee())

	hmock.On("FeeStats").Return(hProtocol.FeeStats{LastLedgerBaseFee: 10}, nil).Once()
	assert.Equal(t, int64(100), c.BaseFee())

	hmock.On("FeeStats").Return(hProtocol.FeeStats{}, &horizonclient.Error{Problem: problem.P{Status: http.StatusInternalServerError}}).Once()
	assert.Equal(t, int64(100), c.BaseFee())
}

func TestSubmitMapsBadRequest(t *testing.T) {
	c, hmock := newTestClient(t, "")
	kp, source := sourceAccount(t)
	tx, err := BuildPaymentTx(source, keypair.MustRandom().Address(), "1", Asset{}, TxParams{BaseFee: 100})
	require.NoError(t, err)
	tx, err = SignTx(tx, c.Passphrase(), kp)
	require.NoError(t, err)

	herr := &horizonclient.Error{Problem: problem.P{
		Title:  "Transaction Failed",
		Status: http.StatusBadRequest,
		Extras: map[string]interface{}{
			"result_codes": map[string]interface{}{"transaction": "tx_bad_seq"},
		},
	}}
	hmock.On("SubmitTransaction", tx).Return(hProtocol.Transaction{}, herr)

	_, err = c.Submit(tx)
	ce, ok := errors.AsClientError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeBadRequest, ce.Code)
	assert.Equal(t, []string{"tx_bad_seq"}, ce.ResultCodes)
}

func TestSubmitSuccess(t *testing.T) {
	c, hmock := newTestClient(t, "")
	kp, source := sourceAccount(t)
	tx, err := BuildPaymentTx(source, keypair.MustRandom().Address(), "1", Asset{}, TxParams{BaseFee: 100})
	require.NoError(t, err)
	tx, err = SignTx(tx, c.Passphrase(), kp)
	require.NoError(t, err)
	hash, err := tx.HashHex(c.Passphrase())
	require.NoError(t, err)

	hmock.On("SubmitTransaction", mock.AnythingOfType("*txnbuild.Transaction")).
		Return(hProtocol.Transaction{Hash: hash, Ledger: 42, Successful: true}, nil)

	resp, err := c.Submit(tx)
	require.NoError(t, err)
	assert.Equal(t, hash, resp.Hash)
	assert.Equal(t, int32(42), resp.Ledger)
}

func TestFund(t *testing.T) {
	address := keypair.MustRandom().Address()
	var gotAddr string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAddr = r.URL.Query().Get("addr")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"hash":"abc"}`))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	res, err := c.Fund(context.Background(), address)
	require.NoError(t, err)
	assert.Equal(t, address, gotAddr)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, `{"hash":"abc"}`, string(res.Body))
}

func TestFundRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"createAccountAlreadyExist"}`))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Fund(context.Background(), keypair.MustRandom().Address())
	ce, ok := errors.AsClientError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeFriendbotRejected, ce.Code)
	assert.Equal(t, http.StatusBadRequest, ce.Status)
	assert.Equal(t, `{"detail":"createAccountAlreadyExist"}`, string(ce.Body))
}

func TestFundTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, _ := newTestClient(t, url)
	_, err := c.Fund(context.Background(), keypair.MustRandom().Address())
	assert.True(t, errors.HasCode(err, errors.ErrCodeNetworkUnavailable))
}

func TestFundDisabledWithoutFriendbot(t *testing.T) {
	c, _ := newTestClient(t, "")
	_, err := c.Fund(context.Background(), keypair.MustRandom().Address())
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestFundValidatesAddress(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Fund(context.Background(), "GNOTANADDRESS")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidAddress))
	assert.False(t, called)
}

var _ txnbuild.Account = (*hProtocol.Account)(nil)
