package goldprice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/kilincfaruk/FuatAtolye/pkg/config"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	"github.com/shopspring/decimal"
)

// gramsPerTroyOunce converts the upstream per-ounce quote when no per-gram
// field is present.
var gramsPerTroyOunce = decimal.RequireFromString("31.1034768")

// Quote is one fetch outcome. Price and LastUpdate are set only on success;
// every failure mode is a distinct status, never an error, so the poll loop
// and the HTTP endpoint can serve the state as data.
type Quote struct {
	Status     enums.GoldPriceStatus `json:"status"`
	Price      string                `json:"price,omitempty"`
	LastUpdate *time.Time            `json:"lastUpdate,omitempty"`
	Message    string                `json:"message,omitempty"`
}

// Fetcher pulls the per-gram 24k gold price in TRY from the upstream API.
type Fetcher struct {
	cfg    config.GoldPriceConfig
	client *http.Client
	now    func() time.Time
}

// NewFetcher builds a fetcher with the configured endpoint and timeout.
func NewFetcher(cfg config.GoldPriceConfig) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		now:    time.Now,
	}
}

type upstreamBody struct {
	Price        json.Number `json:"price"`
	PriceGram24K json.Number `json:"price_gram_24k"`
	ErrorText    string      `json:"error"`
	Message      string      `json:"message"`
}

// Fetch retrieves one quote. Transport failures map to the pending status so
// the caller simply retries on the next tick.
func (f *Fetcher) Fetch(ctx context.Context) Quote {
	if f.cfg.APIKey == "" {
		return Quote{Status: enums.GoldPriceStatusMissingKey}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.Endpoint, nil)
	if err != nil {
		return Quote{Status: enums.GoldPriceStatusPending}
	}
	req.Header.Set("x-access-token", f.cfg.APIKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return Quote{Status: enums.GoldPriceStatusPending}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Quote{Status: enums.GoldPriceStatusPending}
	}
	if resp.StatusCode != http.StatusOK {
		return Quote{Status: enums.GoldPriceStatusAPIError, Message: truncate(string(body), 200)}
	}

	return f.parse(body)
}

func (f *Fetcher) parse(body []byte) Quote {
	if len(body) == 0 {
		return Quote{Status: enums.GoldPriceStatusEmptyResponse}
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Quote{Status: enums.GoldPriceStatusParseError}
	}
	if len(raw) == 0 {
		return Quote{Status: enums.GoldPriceStatusEmptyResponse}
	}

	var parsed upstreamBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Quote{Status: enums.GoldPriceStatusParseError}
	}
	if parsed.ErrorText != "" || parsed.Message != "" {
		msg := parsed.Message
		if msg == "" {
			msg = parsed.ErrorText
		}
		return Quote{Status: enums.GoldPriceStatusAPIError, Message: msg}
	}

	gram, ok := parseNumber(parsed.PriceGram24K)
	if !ok {
		ounce, ounceOK := parseNumber(parsed.Price)
		if !ounceOK {
			return Quote{Status: enums.GoldPriceStatusParseError}
		}
		gram = ounce.Div(gramsPerTroyOunce)
	}

	now := f.now()
	return Quote{
		Status:     enums.GoldPriceStatusSuccess,
		Price:      gram.StringFixed(2),
		LastUpdate: &now,
	}
}

func parseNumber(n json.Number) (decimal.Decimal, bool) {
	if n.String() == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
