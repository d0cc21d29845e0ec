package portfolio

import (
	"context"
	"maps"
	"slices"
	"time"
)

// Reporting reads the registry and sale ledger plus one fresh batch quote
// and never mutates state. Symbols the provider cannot resolve degrade to
// missing rows; only a transport failure aborts a report.

// Summary reports every holding, grouped by symbol across both asset
// classes, against live prices.
func (b *Book) Summary(ctx context.Context) (*SummaryReport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.summaryOf(ctx, b.registry.Symbols())
}

// SummaryByClass reports the holdings of one asset class. A class with no
// holdings yields an empty report.
func (b *Book) SummaryByClass(ctx context.Context, class AssetClass) (*SummaryReport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.summaryOf(ctx, b.registry.SymbolsByClass(class))
}

// SummaryByNames reports the holdings matching a mixed list of exact
// symbols, exact full names, or short name prefixes.
func (b *Book) SummaryByNames(ctx context.Context, names []string) (*SummaryReport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.summaryOf(ctx, b.registry.ResolveNames(names))
}

// summaryOf builds the summary rows for the given held symbols. Callers
// hold the book lock.
func (b *Book) summaryOf(ctx context.Context, symbols []string) (*SummaryReport, error) {
	report := &SummaryReport{}
	if len(symbols) == 0 {
		return report, nil
	}

	batch, err := b.quotes.Quotes(ctx, symbols)
	if err != nil {
		return nil, err
	}
	bySymbol := quotesBySymbol(batch)

	for _, symbol := range symbols {
		quote, ok := bySymbol[symbol]
		if !ok {
			continue
		}
		heldLots, err := b.registry.LotsFor(symbol)
		if err != nil {
			continue
		}
		held := lots(heldLots)
		name, _ := b.registry.FullName(symbol)
		class, _ := b.registry.ClassOf(symbol)

		avg := held.averageUnitCost()
		total := held.totalQuantity()
		report.Rows = append(report.Rows, SummaryRow{
			FullName:     name,
			Symbol:       symbol,
			Class:        class,
			Quantity:     total,
			AvgCost:      avg,
			LivePrice:    quote.Price,
			CurrentValue: quote.Price.Mul(total).Round2(),
			DiffUSD:      quote.Price.Sub(avg).Round2(),
			DiffPct:      percentDiffTrunc(quote.Price, avg),
		})
	}
	return report, nil
}

// TotalValue marks every holding to market and returns the portfolio's
// live value. Symbols with no resolvable quote contribute nothing.
func (b *Book) TotalValue(ctx context.Context) (Money, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	symbols := b.registry.Symbols()
	if len(symbols) == 0 {
		return Money{}, nil
	}
	batch, err := b.quotes.Quotes(ctx, symbols)
	if err != nil {
		return Money{}, err
	}

	var total Money
	for _, quote := range batch {
		total = total.Add(quote.Price.Mul(b.registry.TotalQuantity(quote.Symbol)))
	}
	return total, nil
}

// PurchasesInRange reports, per symbol, the open lots acquired inside
// [start, end] inclusive, oldest first, against live prices. The registry
// is only read; an inverted range yields an empty report.
func (b *Book) PurchasesInRange(ctx context.Context, start, end time.Time) (*PurchaseHistoryReport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	report := &PurchaseHistoryReport{From: start, To: end}
	if start.After(end) {
		return report, nil
	}

	inRange := make(map[string]lots)
	var symbols []string
	for _, symbol := range b.registry.Symbols() {
		heldLots, err := b.registry.LotsFor(symbol)
		if err != nil {
			continue
		}
		matched := lots(heldLots).inRange(start, end).sortedByAcquisition()
		if len(matched) > 0 {
			inRange[symbol] = matched
			symbols = append(symbols, symbol)
		}
	}
	if len(symbols) == 0 {
		return report, nil
	}

	batch, err := b.quotes.Quotes(ctx, symbols)
	if err != nil {
		return nil, err
	}
	bySymbol := quotesBySymbol(batch)

	for _, symbol := range symbols {
		quote, ok := bySymbol[symbol]
		if !ok {
			continue
		}
		for _, lot := range inRange[symbol] {
			report.Rows = append(report.Rows, PurchaseRow{
				FullName:   lot.FullName,
				Symbol:     symbol,
				AcquiredAt: lot.AcquiredAt,
				Quantity:   lot.Quantity,
				UnitCost:   lot.UnitCost,
				LivePrice:  quote.Price,
				DiffUSD:    quote.Price.Sub(lot.UnitCost).Round2(),
				DiffPct:    percentDiffTrunc(quote.Price, lot.UnitCost),
			})
		}
	}
	return report, nil
}

// SalesInRange reports realized sales inside [start, end] inclusive,
// grouped by symbol with each group ordered oldest sale first. No provider
// call is needed; an inverted range yields an empty report.
func (b *Book) SalesInRange(start, end time.Time) *SalesReport {
	b.mu.Lock()
	defer b.mu.Unlock()

	report := &SalesReport{From: start, To: end}
	if start.After(end) {
		return report
	}

	grouped := b.sales.InRange(start, end)
	for _, symbol := range slices.Sorted(maps.Keys(grouped)) {
		for _, sale := range grouped[symbol] {
			report.Rows = append(report.Rows, SaleRow{
				FullName:     sale.FullName,
				Symbol:       symbol,
				SoldAt:       sale.SoldAt,
				Quantity:     sale.Quantity,
				AvgCostBasis: sale.AvgCostBasis,
				SalePrice:    sale.SalePrice,
				DiffUSD:      sale.SalePrice.Sub(sale.AvgCostBasis).Round2(),
				DiffPct:      percentDiffTrunc(sale.SalePrice, sale.AvgCostBasis),
			})
		}
	}
	return report
}
