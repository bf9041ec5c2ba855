package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/stellar/go/clients/horizonclient"

	"github.com/threefoldtech/stellar-examples/jsonx"
)

// ClientErrorCode represents standardized error codes for command failures
type ClientErrorCode string

const (
	// General errors
	ErrCodeInternal ClientErrorCode = "internal_error"

	// Validation errors, raised before any network call
	ErrCodeInvalidRequest ClientErrorCode = "invalid_request"
	ErrCodeInvalidAddress ClientErrorCode = "invalid_address"
	ErrCodeInvalidKey     ClientErrorCode = "invalid_key"
	ErrCodeInvalidAsset   ClientErrorCode = "invalid_asset"
	ErrCodeInvalidAmount  ClientErrorCode = "invalid_amount"

	// Remote errors
	ErrCodeBadRequest         ClientErrorCode = "bad_request"
	ErrCodeAccountNotFound    ClientErrorCode = "account_not_found"
	ErrCodeFriendbotRejected  ClientErrorCode = "friendbot_rejected"
	ErrCodeNetworkUnavailable ClientErrorCode = "network_unavailable"
)

// ClientError is the single error type every command reports through.
type ClientError struct {
	Code        ClientErrorCode `json:"code"`
	Message     string          `json:"message"`
	Status      int             `json:"status,omitempty"`
	Detail      string          `json:"detail,omitempty"`
	ResultCodes []string        `json:"result_codes,omitempty"`
	Body        []byte          `json:"-"`

	cause error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	out, _ := jsonx.Marshal(ClientError{
		Code:        e.Code,
		Message:     e.Message,
		Status:      e.Status,
		Detail:      e.Detail,
		ResultCodes: e.ResultCodes,
	})
	return string(out)
}

func (e *ClientError) Unwrap() error {
	return e.cause
}

// Error message constants
const (
	ErrMsgInvalidRequest     = "Request parameters are invalid"
	ErrMsgInvalidAddress     = "Account address is invalid"
	ErrMsgInvalidKey         = "Secret key is invalid"
	ErrMsgInvalidAsset       = "Wrong asset format, expected code:issuer"
	ErrMsgInvalidAssetCode   = "Asset code must be 1 to 12 alphanumeric characters"
	ErrMsgInvalidAmount      = "Amount must be a positive number with at most 7 decimals"
	ErrMsgBadRequest         = "Transaction was rejected by horizon"
	ErrMsgAccountNotFound    = "Account does not exist on the network"
	ErrMsgFriendbotRejected  = "Friendbot refused to fund the account"
	ErrMsgNetworkUnavailable = "Network request failed"
	ErrMsgInternal           = "Unexpected error"
)

// NewError creates a new ClientError and returns it as error interface
func NewError(code ClientErrorCode, message string) error {
	return &ClientError{
		Code:    code,
		Message: message,
	}
}

// WrapError creates a ClientError carrying cause as its unwrap target.
func WrapError(code ClientErrorCode, message string, cause error) error {
	e := &ClientError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

// NewFriendbotError records a non-2xx friendbot answer with its raw body.
func NewFriendbotError(status int, body []byte) error {
	return &ClientError{
		Code:    ErrCodeFriendbotRejected,
		Message: ErrMsgFriendbotRejected,
		Status:  status,
		Body:    body,
	}
}

// FromHorizon maps an error returned by the horizon client onto a ClientError.
// Errors that already are ClientErrors pass through untouched.
func FromHorizon(err error) error {
	if err == nil {
		return nil
	}
	var ce *ClientError
	if stderrors.As(err, &ce) {
		return err
	}

	herr := horizonclient.GetError(err)
	if herr == nil {
		return WrapError(ErrCodeNetworkUnavailable, ErrMsgNetworkUnavailable, err)
	}

	out := &ClientError{
		Status: herr.Problem.Status,
		Detail: herr.Problem.Detail,
		cause:  err,
	}
	switch herr.Problem.Status {
	case http.StatusBadRequest:
		out.Code = ErrCodeBadRequest
		out.Message = ErrMsgBadRequest
		if herr.Problem.Title != "" {
			out.Message = herr.Problem.Title
		}
		if codes, cerr := herr.ResultCodes(); cerr == nil && codes != nil {
			if codes.TransactionCode != "" {
				out.ResultCodes = append(out.ResultCodes, codes.TransactionCode)
			}
			out.ResultCodes = append(out.ResultCodes, codes.OperationCodes...)
		}
	case http.StatusNotFound:
		out.Code = ErrCodeAccountNotFound
		out.Message = ErrMsgAccountNotFound
	default:
		out.Code = ErrCodeInternal
		out.Message = ErrMsgInternal
		if herr.Problem.Title != "" {
			out.Message = herr.Problem.Title
		}
	}
	return out
}

// CodeOf returns the code of the first ClientError in err's chain, or
// ErrCodeInternal when there is none.
func CodeOf(err error) ClientErrorCode {
	var ce *ClientError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ClientErrorCode) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

// AsClientError extracts the ClientError from err's chain.
func AsClientError(err error) (*ClientError, bool) {
	var ce *ClientError
	ok := stderrors.As(err, &ce)
	return ce, ok
}
