package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/threefoldtech/stellar-examples/errors"
	"github.com/threefoldtech/stellar-examples/logx"
	"github.com/threefoldtech/stellar-examples/utils"
)

// FundResult is the raw answer of a successful friendbot call.
type FundResult struct {
	Status int
	Body   []byte
}

// Fund asks friendbot to create and fund address. A non-2xx answer is returned
// as a friendbot_rejected error carrying the response body.
func (c *StellarClient) Fund(ctx context.Context, address string) (*FundResult, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	if !c.cfg.FriendbotEnabled() {
		return nil, errors.NewError(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("friendbot is not available on the %s network", c.cfg.Network))
	}

	endpoint, err := url.Parse(c.cfg.FriendbotURL)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInvalidRequest, errors.ErrMsgInvalidRequest, err)
	}
	query := endpoint.Query()
	query.Set("addr", address)
	endpoint.RawQuery = query.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeInternal, errors.ErrMsgInternal, err)
	}

	logx.Debug("FRIENDBOT", "funding ", utils.ShortenLog(address))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeNetworkUnavailable, errors.ErrMsgNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeNetworkUnavailable, errors.ErrMsgNetworkUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logx.Warn("FRIENDBOT", "funding ", utils.ShortenLog(address), " rejected with status ", resp.StatusCode)
		return nil, errors.NewFriendbotError(resp.StatusCode, body)
	}
	logx.Info("FRIENDBOT", "funded ", utils.ShortenLog(address))
	return &FundResult{Status: resp.StatusCode, Body: body}, nil
}
