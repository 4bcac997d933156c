package exchangerate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

var (
	ErrUpstream       = errs.New("exchange rate provider returned an error")
	ErrEmptyRateTable = errs.New("exchange rate provider returned no rates")
)

// response accepts both the exchangerate-api v6 shape and the plain
// {base, rates} shape.
type response struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
	Base            string                     `json:"base"`
	Rates           map[string]decimal.Decimal `json:"rates"`
}

type Client struct {
	http  *http.Client
	url   string
	clock clock.Clock
}

func NewClient(cfg config.ExchangeRateConfig, clk clock.Clock) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:  &http.Client{Timeout: timeout},
		url:   cfg.APIURL,
		clock: clk,
	}
}

func (c *Client) Fetch(ctx context.Context) (*shared.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build exchange rate request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "fetch exchange rates")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.Wrap(err, "read exchange rate response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.Wrapf(ErrUpstream, "status %d", resp.StatusCode)
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errs.Wrap(err, "decode exchange rate response")
	}
	if parsed.Result != "" && parsed.Result != "success" {
		return nil, errs.Wrapf(ErrUpstream, "%s", parsed.ErrorType)
	}

	table := &shared.RateTable{Base: parsed.Base, Rates: parsed.Rates, FetchedAt: c.clock.Now()}
	if len(parsed.ConversionRates) > 0 {
		table.Base, table.Rates = parsed.BaseCode, parsed.ConversionRates
	}
	if len(table.Rates) == 0 {
		return nil, ErrEmptyRateTable
	}
	table.Base = strings.ToUpper(table.Base)
	return table, nil
}
