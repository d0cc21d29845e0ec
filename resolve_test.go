package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seededRegistry() *Registry {
	r := NewRegistry()
	r.AddLot(newLot("AAPL", "Apple Inc.", Equity, 100, 5))
	r.AddLot(newLot("MSFT", "Microsoft Corporation", Equity, 300, 2))
	r.AddLot(newLot("BTC-USD", "Bitcoin USD", Crypto, 40000, 1))
	return r
}

func TestResolveExactSymbol(t *testing.T) {
	r := seededRegistry()
	require.Equal(t, []string{"AAPL"}, r.ResolveNames([]string{"AAPL"}))
	require.Equal(t, []string{"BTC-USD"}, r.ResolveNames([]string{"btc-usd"}))
}

func TestResolveFullName(t *testing.T) {
	r := seededRegistry()
	require.Equal(t, []string{"BTC-USD"}, r.ResolveNames([]string{"Bitcoin USD"}))
}

func TestResolveNamePrefix(t *testing.T) {
	r := seededRegistry()
	// only the first 3 characters are significant
	require.Equal(t, []string{"AAPL"}, r.ResolveNames([]string{"Appl"}))
	require.Equal(t, []string{"MSFT"}, r.ResolveNames([]string{"mic"}))
}

func TestResolveSymbolTakesPriority(t *testing.T) {
	r := seededRegistry()
	// MSFT matches a held symbol exactly and must not fall through to
	// name-prefix matching
	require.Equal(t, []string{"MSFT", "AAPL"}, r.ResolveNames([]string{"MSFT", "apple"}))
}

func TestResolveAmbiguousPrefixMatchesAll(t *testing.T) {
	r := seededRegistry()
	r.AddLot(newLot("APLE", "Apple Hospitality REIT", Equity, 15, 10))

	resolved := r.ResolveNames([]string{"App"})
	require.ElementsMatch(t, []string{"AAPL", "APLE"}, resolved)
}

func TestResolveUnknownDropped(t *testing.T) {
	r := seededRegistry()
	require.Empty(t, r.ResolveNames([]string{"ZZZ", "nothing held"}))
	require.Empty(t, r.ResolveNames(nil))
}

func TestResolveDeduplicates(t *testing.T) {
	r := seededRegistry()
	require.Equal(t, []string{"AAPL"}, r.ResolveNames([]string{"AAPL", "aapl", "Apple Inc."}))
}
