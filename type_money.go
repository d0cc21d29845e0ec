package portfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value in USD. Every price, cost and balance in the
// book is USD, matching the quote provider.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the USD currency metadata used for display.
func (m Money) currency() money.Currency {
	// the Money constructor guarantees a non-nil currency
	return *money.New(0, money.USD).Currency()
}

// String formats the value as USD, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString formats the value with an explicit sign, "-" when zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value)} }
func (m Money) DivInt(n int) Money { return m.Div(Q(n)) }

// Round2 rounds to cents. Report differences are quoted to 2 decimals.
func (m Money) Round2() Money { return Money{value: m.value.Round(2)} }

// percentDiffTrunc returns the difference between live and base as an integer
// percentage, truncated toward zero. Matches the legacy report format.
func percentDiffTrunc(live, base Money) int64 {
	if base.IsZero() {
		return 0
	}
	return live.value.Sub(base.value).Mul(newDecimal(100)).Div(base.value).IntPart()
}
