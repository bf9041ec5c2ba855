package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/stellar/go/amount"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/txnbuild"

	"github.com/threefoldtech/stellar-examples/errors"
)

const assetCodeMaxLength = 12

// Asset is either the native asset (zero value) or a credit asset code:issuer.
type Asset struct {
	Code   string `json:"code,omitempty" yaml:"code,omitempty"`
	Issuer string `json:"issuer,omitempty" yaml:"issuer,omitempty"`
}

func (a Asset) IsNative() bool {
	return a.Code == "" && a.Issuer == ""
}

func (a Asset) String() string {
	if a.IsNative() {
		return "XLM"
	}
	return a.Code + ":" + a.Issuer
}

func (a Asset) ToTxnbuild() txnbuild.Asset {
	if a.IsNative() {
		return txnbuild.NativeAsset{}
	}
	return txnbuild.CreditAsset{Code: a.Code, Issuer: a.Issuer}
}

// ParseAsset parses "CODE:ISSUER". The empty string is the native asset.
// Anything other than exactly two non-empty parts is rejected.
func ParseAsset(s string) (Asset, error) {
	if s == "" {
		return Asset{}, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Asset{}, errors.NewError(errors.ErrCodeInvalidAsset, errors.ErrMsgInvalidAsset)
	}
	return NewCreditAsset(parts[0], parts[1])
}

// NewCreditAsset validates code and issuer.
func NewCreditAsset(code, issuer string) (Asset, error) {
	if err := ValidateAssetCode(code); err != nil {
		return Asset{}, err
	}
	if !strkey.IsValidEd25519PublicKey(issuer) {
		return Asset{}, errors.NewError(errors.ErrCodeInvalidAsset, fmt.Sprintf("asset issuer %q is not a valid account address", issuer))
	}
	return Asset{Code: code, Issuer: issuer}, nil
}

func ValidateAssetCode(code string) error {
	if len(code) == 0 || len(code) > assetCodeMaxLength {
		return errors.NewError(errors.ErrCodeInvalidAsset, errors.ErrMsgInvalidAssetCode)
	}
	for _, r := range code {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum {
			return errors.NewError(errors.ErrCodeInvalidAsset, errors.ErrMsgInvalidAssetCode)
		}
	}
	return nil
}

func ValidateAddress(addr string) error {
	if !strkey.IsValidEd25519PublicKey(addr) {
		return errors.NewError(errors.ErrCodeInvalidAddress, fmt.Sprintf("%s: %q", errors.ErrMsgInvalidAddress, addr))
	}
	return nil
}

// ValidateAmount accepts a positive decimal amount with at most 7 decimals.
func ValidateAmount(value string) error {
	stroops, err := amount.ParseInt64(value)
	if err != nil || stroops <= 0 {
		return errors.NewError(errors.ErrCodeInvalidAmount, fmt.Sprintf("%s: %q", errors.ErrMsgInvalidAmount, value))
	}
	return nil
}

// ValidateTrustLimit accepts an empty limit (the maximum) or a non-negative amount.
// A zero limit removes the trustline.
func ValidateTrustLimit(limit string) error {
	if limit == "" {
		return nil
	}
	if stroops, err := amount.ParseInt64(limit); err != nil || stroops < 0 {
		return errors.NewError(errors.ErrCodeInvalidAmount, fmt.Sprintf("invalid trustline limit %q", limit))
	}
	return nil
}

// TxParams controls fee and validity window of built transactions.
type TxParams struct {
	BaseFee int64
	// Timeout is the upper time bound from now. Zero means no upper bound.
	Timeout time.Duration
}

func (p TxParams) preconditions() txnbuild.Preconditions {
	if p.Timeout <= 0 {
		return txnbuild.Preconditions{TimeBounds: txnbuild.NewInfiniteTimeout()}
	}
	// rounded up to whole seconds
	secs := int64((p.Timeout + time.Second - 1) / time.Second)
	return txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(secs)}
}

func buildTx(source txnbuild.Account, op txnbuild.Operation, p TxParams) (*txnbuild.Transaction, error) {
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        source,
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{op},
		BaseFee:              p.BaseFee,
		Preconditions:        p.preconditions(),
	})
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInvalidRequest, "failed to build transaction", err)
	}
	return tx, nil
}

// BuildCreateAccountTx creates and funds destination from source.
func BuildCreateAccountTx(source txnbuild.Account, destination, startingBalance string, p TxParams) (*txnbuild.Transaction, error) {
	if err := ValidateAddress(destination); err != nil {
		return nil, err
	}
	if err := ValidateAmount(startingBalance); err != nil {
		return nil, err
	}
	return buildTx(source, &txnbuild.CreateAccount{
		Destination: destination,
		Amount:      startingBalance,
	}, p)
}

// BuildPaymentTx pays amount of asset to destination.
func BuildPaymentTx(source txnbuild.Account, destination, value string, asset Asset, p TxParams) (*txnbuild.Transaction, error) {
	if err := ValidateAddress(destination); err != nil {
		return nil, err
	}
	if err := ValidateAmount(value); err != nil {
		return nil, err
	}
	return buildTx(source, &txnbuild.Payment{
		Destination: destination,
		Amount:      value,
		Asset:       asset.ToTxnbuild(),
	}, p)
}

// BuildChangeTrustTx opens or updates a trustline. An empty limit means the maximum.
func BuildChangeTrustTx(source txnbuild.Account, asset Asset, limit string, p TxParams) (*txnbuild.Transaction, error) {
	if asset.IsNative() {
		return nil, errors.NewError(errors.ErrCodeInvalidAsset, "a trustline needs a credit asset")
	}
	if err := ValidateTrustLimit(limit); err != nil {
		return nil, err
	}
	if limit == "" {
		limit = txnbuild.MaxTrustlineLimit
	}

	line, err := txnbuild.CreditAsset{Code: asset.Code, Issuer: asset.Issuer}.ToChangeTrustAsset()
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInvalidAsset, errors.ErrMsgInvalidAsset, err)
	}
	return buildTx(source, &txnbuild.ChangeTrust{
		Line:  line,
		Limit: limit,
	}, p)
}

// Balance is one balance line of an account.
type Balance struct {
	Asset   string `json:"asset" yaml:"asset"`
	Balance string `json:"balance" yaml:"balance"`
	Limit   string `json:"limit,omitempty" yaml:"limit,omitempty"`
}

type Signer struct {
	Key    string `json:"key" yaml:"key"`
	Weight int32  `json:"weight" yaml:"weight"`
	Type   string `json:"type" yaml:"type"`
}

type AccountFlags struct {
	AuthRequired        bool `json:"auth_required" yaml:"auth_required"`
	AuthRevocable       bool `json:"auth_revocable" yaml:"auth_revocable"`
	AuthImmutable       bool `json:"auth_immutable" yaml:"auth_immutable"`
	AuthClawbackEnabled bool `json:"auth_clawback_enabled" yaml:"auth_clawback_enabled"`
}

// AccountSummary holds the fields check-account reports.
type AccountSummary struct {
	Address  string            `json:"address" yaml:"address"`
	Balances []Balance         `json:"balances" yaml:"balances"`
	Sequence int64             `json:"sequence" yaml:"sequence"`
	Flags    AccountFlags      `json:"flags" yaml:"flags"`
	Signers  []Signer          `json:"signers" yaml:"signers"`
	Data     map[string]string `json:"data" yaml:"data"`
}

func NewAccountSummary(account hProtocol.Account) AccountSummary {
	seq, _ := account.GetSequenceNumber()
	summary := AccountSummary{
		Address:  account.AccountID,
		Sequence: seq,
		Flags: AccountFlags{
			AuthRequired:        account.Flags.AuthRequired,
			AuthRevocable:       account.Flags.AuthRevocable,
			AuthImmutable:       account.Flags.AuthImmutable,
			AuthClawbackEnabled: account.Flags.AuthClawbackEnabled,
		},
		Balances: make([]Balance, 0, len(account.Balances)),
		Signers:  make([]Signer, 0, len(account.Signers)),
		Data:     map[string]string{},
	}
	for _, b := range account.Balances {
		line := Balance{Balance: b.Balance, Limit: b.Limit}
		switch b.Asset.Type {
		case "native":
			line.Asset = "XLM"
		case "liquidity_pool_shares":
			line.Asset = "pool:" + b.LiquidityPoolId
		default:
			line.Asset = b.Asset.Code + ":" + b.Asset.Issuer
		}
		summary.Balances = append(summary.Balances, line)
	}
	for _, s := range account.Signers {
		summary.Signers = append(summary.Signers, Signer{Key: s.Key, Weight: s.Weight, Type: s.Type})
	}
	for k, v := range account.Data {
		summary.Data[k] = v
	}
	return summary
}
