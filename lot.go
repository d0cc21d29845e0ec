package portfolio

import (
	"sort"
	"time"
)

// Lot is a single acquisition of an instrument: the quantity bought in one
// purchase together with the unit price paid and the acquisition time.
// Only Quantity ever changes, shrinking on partial disposal; a lot is
// removed from the registry once its quantity reaches zero.
type Lot struct {
	Symbol     string
	FullName   string
	Class      AssetClass
	AcquiredAt time.Time
	UnitCost   Money
	Quantity   Quantity
}

type lots []*Lot

// totalQuantity sums the open quantity across the lots.
func (l lots) totalQuantity() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.Quantity)
	}
	return total
}

// sortedByUnitCost returns a copy ordered cheapest lot first. This is the
// disposal order: lowest unit cost is always consumed before higher ones,
// regardless of acquisition date.
func (l lots) sortedByUnitCost() lots {
	sorted := make(lots, len(l))
	copy(sorted, l)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UnitCost.LessThan(sorted[j].UnitCost)
	})
	return sorted
}

// sortedByAcquisition returns a copy ordered oldest purchase first.
func (l lots) sortedByAcquisition() lots {
	sorted := make(lots, len(l))
	copy(sorted, l)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AcquiredAt.Before(sorted[j].AcquiredAt)
	})
	return sorted
}

// inRange filters to lots acquired within [start, end] inclusive.
func (l lots) inRange(start, end time.Time) lots {
	var in lots
	for _, lot := range l {
		if lot.AcquiredAt.Before(start) || lot.AcquiredAt.After(end) {
			continue
		}
		in = append(in, lot)
	}
	return in
}

// averageUnitCost is the unweighted per-lot mean of unit costs: the sum of
// unit prices divided by the number of lots, not a quantity-weighted mean.
// Legacy reports and disposal cost basis both use this exact form.
func (l lots) averageUnitCost() Money {
	if len(l) == 0 {
		return Money{}
	}
	var sum Money
	for _, lot := range l {
		sum = sum.Add(lot.UnitCost)
	}
	return sum.DivInt(len(l))
}
