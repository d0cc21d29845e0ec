package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// YahooConfig configures the Yahoo Finance quote client.
type YahooConfig struct {
	BaseURL  string        // e.g. https://yfapi.net
	APIKey   string        // sent as the x-api-key header
	Timeout  time.Duration // bound on every provider call
	CacheTTL time.Duration // live quote reuse window, 0 disables caching
	Debug    bool
}

// YahooClient fetches live quotes from the Yahoo Finance v6 quote endpoint.
// It implements QuoteProvider. A small TTL cache in front of the HTTP call
// keeps repeated report renders within the provider's request quota.
type YahooClient struct {
	client *resty.Client
	ttl    time.Duration

	mu    sync.RWMutex
	cache map[string]cachedQuote
}

type cachedQuote struct {
	quote   Quote
	fetched time.Time
}

// NewYahooClient creates a quote client from the given configuration.
func NewYahooClient(cfg YahooConfig) *YahooClient {
	client := resty.New().
		SetDebug(cfg.Debug).
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.BaseURL).
		SetHeader("x-api-key", cfg.APIKey)
	return &YahooClient{
		client: client,
		ttl:    cfg.CacheTTL,
		cache:  make(map[string]cachedQuote),
	}
}

// Quotes resolves live quotes for the given symbols. Unresolvable symbols
// are omitted from the result; transport and decoding problems are reported
// as a wrapped ErrNetworkFailure.
func (y *YahooClient) Quotes(ctx context.Context, symbols []string) ([]Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	if quotes, ok := y.cachedAll(symbols); ok {
		return quotes, nil
	}

	rqID := uuid.NewString()
	slog.Debug("start yahoo quote request",
		slog.String("rqID", rqID), slog.String("symbols", strings.Join(symbols, ",")))

	resp, err := y.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"region":  "US",
			"lang":    "en",
			"symbols": strings.Join(symbols, ","),
		}).
		Get("/v6/finance/quote")
	if err != nil {
		slog.Error("error while dialing yahoo finance",
			slog.String("err", err.Error()), slog.String("rqID", rqID))
		return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	if resp.IsError() {
		slog.Error("yahoo finance returned non-2xx",
			slog.String("status", resp.Status()), slog.String("rqID", rqID))
		return nil, fmt.Errorf("%w: yahoo finance returned %s", ErrNetworkFailure, resp.Status())
	}

	quotes, err := parseQuoteResponse(resp.Body())
	if err != nil {
		slog.Error("can't parse yahoo finance response",
			slog.String("err", err.Error()), slog.String("rqID", rqID))
		return nil, err
	}

	y.store(quotes)
	slog.Debug("yahoo quote request complete",
		slog.String("rqID", rqID), slog.Int("quotes", len(quotes)))
	return quotes, nil
}

// cachedAll returns the cached quotes when every requested symbol is still
// fresh. A single stale or missing symbol forces a full refetch.
func (y *YahooClient) cachedAll(symbols []string) ([]Quote, bool) {
	if y.ttl <= 0 {
		return nil, false
	}
	y.mu.RLock()
	defer y.mu.RUnlock()
	quotes := make([]Quote, 0, len(symbols))
	for _, s := range symbols {
		c, ok := y.cache[strings.ToUpper(s)]
		if !ok || time.Since(c.fetched) >= y.ttl {
			return nil, false
		}
		quotes = append(quotes, c.quote)
	}
	return quotes, true
}

func (y *YahooClient) store(quotes []Quote) {
	if y.ttl <= 0 {
		return
	}
	y.mu.Lock()
	defer y.mu.Unlock()
	now := time.Now()
	for _, q := range quotes {
		y.cache[strings.ToUpper(q.Symbol)] = cachedQuote{quote: q, fetched: now}
	}
}

// parseQuoteResponse plucks the quote fields out of the v6 response
// document. Entries with a quote type other than EQUITY or CRYPTOCURRENCY
// are skipped, as are malformed entries.
func parseQuoteResponse(body []byte) ([]Quote, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding quote response: %v", ErrNetworkFailure, err)
	}

	results, err := jsonpath.Get("$.quoteResponse.result", doc)
	if err != nil {
		// a response without the result array resolves no symbols
		return nil, nil
	}
	entries, ok := results.([]any)
	if !ok {
		return nil, nil
	}

	var quotes []Quote
	for _, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		symbol, _ := fields["symbol"].(string)
		name, _ := fields["shortName"].(string)
		quoteType, _ := fields["quoteType"].(string)
		price, okPrice := fields["regularMarketPrice"].(float64)
		ts, okTime := fields["regularMarketTime"].(float64)
		if symbol == "" || !okPrice || !okTime {
			continue
		}

		var class AssetClass
		switch quoteType {
		case "EQUITY":
			class = Equity
		case "CRYPTOCURRENCY":
			class = Crypto
		default:
			continue
		}

		quotes = append(quotes, Quote{
			Symbol:    symbol,
			FullName:  name,
			Class:     class,
			Timestamp: time.Unix(int64(ts), 0).UTC(),
			Price:     M(decimal.NewFromFloat(price)),
		})
	}
	return quotes, nil
}
