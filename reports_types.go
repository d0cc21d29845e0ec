package portfolio

import "time"

// SummaryRow is one symbol's aggregated holding marked against the live
// market. AvgCost is the unweighted per-lot mean of unit costs. DiffUSD is
// rounded to cents; DiffPct is an integer percentage truncated toward zero.
type SummaryRow struct {
	FullName     string
	Symbol       string
	Class        AssetClass
	Quantity     Quantity
	AvgCost      Money
	LivePrice    Money
	CurrentValue Money
	DiffUSD      Money
	DiffPct      int64
}

// SummaryReport lists holdings grouped by symbol. Symbols with no
// resolvable quote are omitted rather than failing the report.
type SummaryReport struct {
	Rows []SummaryRow
}

// PurchaseRow is one open lot shown against the live price.
type PurchaseRow struct {
	FullName   string
	Symbol     string
	AcquiredAt time.Time
	Quantity   Quantity
	UnitCost   Money
	LivePrice  Money
	DiffUSD    Money
	DiffPct    int64
}

// PurchaseHistoryReport lists, per symbol, the lots acquired inside a time
// range, oldest purchase first.
type PurchaseHistoryReport struct {
	From time.Time
	To   time.Time
	Rows []PurchaseRow
}

// SaleRow is one realized sale with its gain against the cost basis.
type SaleRow struct {
	FullName     string
	Symbol       string
	SoldAt       time.Time
	Quantity     Quantity
	AvgCostBasis Money
	SalePrice    Money
	DiffUSD      Money
	DiffPct      int64
}

// SalesReport lists realized sales inside a time range, grouped by symbol
// and oldest sale first within each group.
type SalesReport struct {
	From time.Time
	To   time.Time
	Rows []SaleRow
}
