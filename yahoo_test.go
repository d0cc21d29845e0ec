package portfolio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const quoteResponseBody = `{
  "quoteResponse": {
    "result": [
      {
        "symbol": "AAPL",
        "shortName": "Apple Inc.",
        "quoteType": "EQUITY",
        "regularMarketTime": 1700000000,
        "regularMarketPrice": 160.0
      },
      {
        "symbol": "BTC-USD",
        "shortName": "Bitcoin USD",
        "quoteType": "CRYPTOCURRENCY",
        "regularMarketTime": 1700000100,
        "regularMarketPrice": 40000.5
      },
      {
        "symbol": "EURUSD=X",
        "shortName": "EUR/USD",
        "quoteType": "CURRENCY",
        "regularMarketTime": 1700000000,
        "regularMarketPrice": 1.05
      }
    ],
    "error": null
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, ttl time.Duration) (*YahooClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewYahooClient(YahooConfig{
		BaseURL:  server.URL,
		APIKey:   "test-key",
		Timeout:  2 * time.Second,
		CacheTTL: ttl,
	})
	return client, server
}

func TestYahooQuotesParsesResponse(t *testing.T) {
	var gotPath, gotKey, gotSymbols string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotSymbols = r.URL.Query().Get("symbols")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(quoteResponseBody))
	}, 0)

	quotes, err := client.Quotes(context.Background(), []string{"AAPL", "BTC-USD", "EURUSD=X"})
	require.NoError(t, err)
	require.Equal(t, "/v6/finance/quote", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Equal(t, "AAPL,BTC-USD,EURUSD=X", gotSymbols)

	// the CURRENCY entry is skipped, only equity and crypto survive
	require.Len(t, quotes, 2)
	require.Equal(t, "AAPL", quotes[0].Symbol)
	require.Equal(t, "Apple Inc.", quotes[0].FullName)
	require.Equal(t, Equity, quotes[0].Class)
	require.True(t, quotes[0].Price.Equal(M(160.0)))
	require.True(t, quotes[0].Timestamp.Equal(time.Unix(1700000000, 0).UTC()))

	require.Equal(t, "BTC-USD", quotes[1].Symbol)
	require.Equal(t, Crypto, quotes[1].Class)
	require.True(t, quotes[1].Price.Equal(M(40000.5)))
}

func TestYahooQuotesOmitsUnresolved(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteResponse": {"result": [], "error": null}}`))
	}, 0)

	quotes, err := client.Quotes(context.Background(), []string{"NOPE"})
	require.NoError(t, err)
	require.Empty(t, quotes, "unresolved symbols are not an error")
}

func TestYahooQuotesServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "limit exceeded", http.StatusTooManyRequests)
	}, 0)

	_, err := client.Quotes(context.Background(), []string{"AAPL"})
	require.ErrorIs(t, err, ErrNetworkFailure)
}

func TestYahooQuotesMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}, 0)

	_, err := client.Quotes(context.Background(), []string{"AAPL"})
	require.ErrorIs(t, err, ErrNetworkFailure)
}

func TestYahooQuotesCacheWithinTTL(t *testing.T) {
	var hits int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(quoteResponseBody))
	}, time.Minute)

	_, err := client.Quotes(context.Background(), []string{"AAPL", "BTC-USD"})
	require.NoError(t, err)
	quotes, err := client.Quotes(context.Background(), []string{"AAPL", "BTC-USD"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	require.Equal(t, 1, hits, "second call must be served from cache")

	// an uncached symbol forces a refetch
	_, err = client.Quotes(context.Background(), []string{"AAPL", "EURUSD=X"})
	require.NoError(t, err)
	require.Equal(t, 2, hits)
}

func TestYahooQuotesEmptyInput(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty symbol list")
	}, 0)

	quotes, err := client.Quotes(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, quotes)
}
