package portfolio

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Book is the session context for one user's portfolio: the open-lot
// registry, the realized-sale ledger, the cash balance and the quote
// provider, with every trading and reporting operation hanging off it.
//
// A single mutex spans each operation's whole critical section, fetch quote
// through mutate through record. The session is single-user and operations
// are synchronous, so no finer-grained locking is warranted.
type Book struct {
	mu       sync.Mutex
	registry *Registry
	sales    *SaleLedger
	funds    *Funds
	quotes   QuoteProvider
}

// NewBook creates a session book with an opening cash balance.
func NewBook(provider QuoteProvider, opening Money) *Book {
	return &Book{
		registry: NewRegistry(),
		sales:    NewSaleLedger(),
		funds:    NewFunds(opening),
		quotes:   provider,
	}
}

// Balance returns the available cash.
func (b *Book) Balance() Money {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.funds.Balance()
}

// AddFunds credits cash to the session. Non-positive amounts are ignored.
func (b *Book) AddFunds(amount Money) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.funds.Add(amount)
}

// CanWithdraw reports whether the balance covers the amount, without
// mutating it.
func (b *Book) CanWithdraw(amount Money) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.funds.HasAtLeast(amount)
}

// Purchase buys quantity units of symbol at the live price, debiting funds
// and opening a new lot. The quote is fetched before any mutation; a failed
// purchase leaves the book untouched.
func (b *Book) Purchase(ctx context.Context, symbol string, quantity Quantity) (*Lot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuantity, quantity)
	}

	quote, err := singleQuote(ctx, b.quotes, symbol)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	cost := quote.Price.Mul(quantity)
	if !b.funds.HasAtLeast(cost) {
		return nil, fmt.Errorf("%w: cost %s exceeds balance %s",
			ErrInsufficientFunds, cost, b.funds.Balance())
	}

	lot := &Lot{
		Symbol:     quote.Symbol,
		FullName:   quote.FullName,
		Class:      quote.Class,
		AcquiredAt: quote.Timestamp,
		UnitCost:   quote.Price,
		Quantity:   quantity,
	}
	b.funds.debit(cost)
	b.registry.AddLot(lot)
	return lot, nil
}

// disposalPlan stages the lot changes of one sale so they can be applied
// only once the live quote is in hand.
type disposalPlan struct {
	remove    []*Lot
	shrink    *Lot
	shrinkBy  Quantity
	costSum   Money
	visited   int
	stillHeld bool
}

// planDisposal walks the symbol's lots cheapest first, consuming whole lots
// while the remaining quantity covers them and splitting the first lot it
// cannot fully consume. Every lot touched contributes its unit cost once to
// the cost basis, which is the unweighted per-lot mean of those costs.
func planDisposal(held lots, quantity Quantity) disposalPlan {
	var plan disposalPlan
	remaining := quantity
	for _, lot := range held.sortedByUnitCost() {
		plan.costSum = plan.costSum.Add(lot.UnitCost)
		plan.visited++

		if remaining.GreaterThanOrEqual(lot.Quantity) {
			plan.remove = append(plan.remove, lot)
			remaining = remaining.Sub(lot.Quantity)
		} else {
			plan.shrink = lot
			plan.shrinkBy = remaining
			plan.stillHeld = true
			break
		}
	}
	return plan
}

// Sell disposes quantity units of symbol at the live price, credits the
// proceeds and appends a SoldLot record. Lots are consumed cheapest first;
// a partially consumed lot is split and stays open. The quote is fetched
// before any lot is mutated, so a quote failure leaves the book untouched.
func (b *Book) Sell(ctx context.Context, symbol string, quantity Quantity) (*SoldLot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.registry.Holds(symbol) {
		return nil, fmt.Errorf("%w: %q not held", ErrUnknownSymbol, symbol)
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuantity, quantity)
	}

	heldLots, err := b.registry.LotsFor(symbol)
	if err != nil {
		return nil, err
	}
	held := lots(heldLots)
	if quantity.GreaterThan(held.totalQuantity()) {
		return nil, fmt.Errorf("%w: %s exceeds held %s",
			ErrInsufficientHoldings, quantity, held.totalQuantity())
	}

	quote, err := singleQuote(ctx, b.quotes, symbol)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, fmt.Errorf("%w: %q", ErrQuoteUnavailable, symbol)
	}

	plan := planDisposal(held, quantity)
	for _, lot := range plan.remove {
		b.registry.RemoveLot(lot)
	}
	if plan.shrink != nil && plan.shrinkBy.IsPositive() {
		b.registry.ShrinkLot(plan.shrink, plan.shrinkBy)
	}

	proceeds := quote.Price.Mul(quantity)
	b.funds.credit(proceeds)

	record := SoldLot{
		ID:           uuid.NewString(),
		Symbol:       quote.Symbol,
		FullName:     quote.FullName,
		Class:        quote.Class,
		SoldAt:       quote.Timestamp,
		AvgCostBasis: plan.costSum.DivInt(plan.visited),
		SalePrice:    quote.Price,
		Quantity:     quantity,
	}
	b.sales.RecordSale(record)
	return &record, nil
}
