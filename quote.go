package portfolio

import (
	"context"
	"time"
)

// Quote is one live price observation from the market data provider.
type Quote struct {
	Symbol    string
	FullName  string
	Class     AssetClass
	Timestamp time.Time
	Price     Money
}

// QuoteProvider resolves live quotes for a batch of symbols.
//
// The provider returns one Quote per resolvable symbol, in provider-defined
// order, and silently omits symbols it cannot resolve; callers must tolerate
// partial results. A transport problem is an error (wrapped
// ErrNetworkFailure), an unresolved symbol is not.
type QuoteProvider interface {
	Quotes(ctx context.Context, symbols []string) ([]Quote, error)
}

// singleQuote fetches the quote for one symbol. A nil result with nil error
// means the provider has no such symbol.
func singleQuote(ctx context.Context, p QuoteProvider, symbol string) (*Quote, error) {
	quotes, err := p.Quotes(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}
	for _, q := range quotes {
		if q.Symbol == symbol {
			return &q, nil
		}
	}
	// provider-defined order: take the first entry when the canonical
	// symbol differs from the requested one (e.g. btc-usd -> BTC-USD)
	if len(quotes) > 0 {
		return &quotes[0], nil
	}
	return nil, nil
}

// quotesBySymbol indexes a batch result by canonical symbol.
func quotesBySymbol(quotes []Quote) map[string]Quote {
	indexed := make(map[string]Quote, len(quotes))
	for _, q := range quotes {
		indexed[q.Symbol] = q
	}
	return indexed
}
