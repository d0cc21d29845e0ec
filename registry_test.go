package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newLot(symbol, name string, class AssetClass, cost float64, qty int) *Lot {
	return &Lot{
		Symbol:     symbol,
		FullName:   name,
		Class:      class,
		AcquiredAt: t0,
		UnitCost:   M(cost),
		Quantity:   Q(qty),
	}
}

func TestRegistryAddIndexesSymbolAndName(t *testing.T) {
	r := NewRegistry()
	r.AddLot(newLot("AAPL", "Apple Inc.", Equity, 100, 5))

	class, err := r.ClassOf("AAPL")
	require.NoError(t, err)
	require.Equal(t, Equity, class)

	name, err := r.FullName("AAPL")
	require.NoError(t, err)
	require.Equal(t, "Apple Inc.", name)

	require.NoError(t, r.invariant())
}

func TestRegistryUnknownSymbol(t *testing.T) {
	r := NewRegistry()

	_, err := r.ClassOf("AAPL")
	require.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = r.LotsFor("AAPL")
	require.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = r.FullName("AAPL")
	require.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestRegistryClassPartitioning(t *testing.T) {
	r := NewRegistry()
	r.AddLot(newLot("AAPL", "Apple Inc.", Equity, 100, 5))
	r.AddLot(newLot("BTC-USD", "Bitcoin USD", Crypto, 40000, 1))
	r.AddLot(newLot("MSFT", "Microsoft Corporation", Equity, 300, 2))

	require.Equal(t, []string{"AAPL", "MSFT"}, r.SymbolsByClass(Equity))
	require.Equal(t, []string{"BTC-USD"}, r.SymbolsByClass(Crypto))
	require.Equal(t, []string{"AAPL", "BTC-USD", "MSFT"}, r.Symbols())
}

func TestRegistryRemoveLastLotPurgesIndexes(t *testing.T) {
	r := NewRegistry()
	first := newLot("AAPL", "Apple Inc.", Equity, 100, 5)
	second := newLot("AAPL", "Apple Inc.", Equity, 120, 3)
	r.AddLot(first)
	r.AddLot(second)

	r.RemoveLot(first)
	require.True(t, r.Holds("AAPL"), "one lot left, symbol stays indexed")
	require.NoError(t, r.invariant())

	r.RemoveLot(second)
	require.False(t, r.Holds("AAPL"))
	_, err := r.FullName("AAPL")
	require.ErrorIs(t, err, ErrUnknownSymbol)
	require.NoError(t, r.invariant())
}

func TestRegistryShrinkLot(t *testing.T) {
	r := NewRegistry()
	lot := newLot("AAPL", "Apple Inc.", Equity, 100, 5)
	r.AddLot(lot)

	r.ShrinkLot(lot, Q(2))
	require.True(t, lot.Quantity.Equal(Q(3)))
	require.True(t, r.TotalQuantity("AAPL").Equal(Q(3)))
	require.NoError(t, r.invariant())
}

func TestRegistryTotalQuantityAcrossLots(t *testing.T) {
	r := NewRegistry()
	r.AddLot(newLot("ETH-USD", "Ethereum USD", Crypto, 50, 8))
	r.AddLot(newLot("ETH-USD", "Ethereum USD", Crypto, 60, 4))

	require.True(t, r.TotalQuantity("ETH-USD").Equal(Q(12)))
	require.True(t, r.TotalQuantity("AAPL").IsZero())
}
