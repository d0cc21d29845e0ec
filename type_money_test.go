package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	cost := M(139.96).Mul(Q(20))
	require.True(t, cost.Equal(M(2799.20)), "cost %s", cost)

	avg := M(10).Add(M(20)).DivInt(2)
	require.True(t, avg.Equal(M(15)))

	require.True(t, M(160.00).Sub(M(139.96)).Equal(M(20.04)))
}

func TestMoneyRound2(t *testing.T) {
	third := M(10).Div(Q(3))
	require.Equal(t, "$3.33", third.Round2().String())
	require.True(t, M(1.005).Round2().Equal(M(1.01)))
}

func TestMoneyString(t *testing.T) {
	require.Equal(t, "$139.96", M(139.96).String())
	require.Equal(t, "$1,399.60", M(1399.6).String())
	require.Equal(t, "+$20.04", M(20.04).SignedString())
	require.Equal(t, "-$20.04", M(-20.04).SignedString())
	require.Equal(t, "-", M(0).SignedString())
}

func TestQuantityComparisons(t *testing.T) {
	require.True(t, Q(7).GreaterThanOrEqual(Q(7)))
	require.True(t, Q(7.5).GreaterThan(Q(7)))
	require.True(t, Q(0).IsZero())
	require.False(t, Q(-1).IsPositive())
	require.True(t, Q(5).Sub(Q(2)).Equal(Q(3)))
}

func TestLotsHelpers(t *testing.T) {
	held := lots{
		newLot("AAPL", "Apple Inc.", Equity, 20, 5),
		newLot("AAPL", "Apple Inc.", Equity, 10, 5),
	}
	require.True(t, held.totalQuantity().Equal(Q(10)))
	require.True(t, held.averageUnitCost().Equal(M(15)))

	sorted := held.sortedByUnitCost()
	require.True(t, sorted[0].UnitCost.Equal(M(10)))
	// the original slice is untouched
	require.True(t, held[0].UnitCost.Equal(M(20)))
}
