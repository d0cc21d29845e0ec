package portfolio

import (
	"sort"
	"time"
)

// SoldLot records one completed sale: the quantity disposed, the unit price
// realized, and the cost basis attributed to the disposed quantity. Records
// never change once written.
type SoldLot struct {
	ID           string
	Symbol       string
	FullName     string
	Class        AssetClass
	SoldAt       time.Time
	AvgCostBasis Money
	SalePrice    Money
	Quantity     Quantity
}

// SaleLedger is the append-only, insertion-ordered record of completed
// sales.
type SaleLedger struct {
	records []SoldLot
}

// NewSaleLedger creates an empty ledger.
func NewSaleLedger() *SaleLedger {
	return &SaleLedger{}
}

// RecordSale appends a sale. The ledger is never mutated otherwise.
func (l *SaleLedger) RecordSale(s SoldLot) {
	l.records = append(l.records, s)
}

// Len returns the number of recorded sales.
func (l *SaleLedger) Len() int { return len(l.records) }

// All returns every record in insertion order.
func (l *SaleLedger) All() []SoldLot {
	out := make([]SoldLot, len(l.records))
	copy(out, l.records)
	return out
}

// BySymbol groups all records by symbol.
func (l *SaleLedger) BySymbol() map[string][]SoldLot {
	grouped := make(map[string][]SoldLot)
	for _, r := range l.records {
		grouped[r.Symbol] = append(grouped[r.Symbol], r)
	}
	return grouped
}

// InRange returns records with SoldAt inside [start, end] inclusive, grouped
// by symbol and ordered oldest sale first within each group.
func (l *SaleLedger) InRange(start, end time.Time) map[string][]SoldLot {
	grouped := make(map[string][]SoldLot)
	for symbol, records := range l.BySymbol() {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].SoldAt.Before(records[j].SoldAt)
		})
		var in []SoldLot
		for _, r := range records {
			if r.SoldAt.Before(start) || r.SoldAt.After(end) {
				continue
			}
			in = append(in, r)
		}
		if len(in) > 0 {
			grouped[symbol] = in
		}
	}
	return grouped
}
