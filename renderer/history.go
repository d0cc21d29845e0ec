package renderer

import "github.com/kmcgrail/portfolio"

const purchasesTemplate = `{{range .Rows}}{{color .DiffUSD}}Asset Name     : {{.FullName}}
Asset Symbol   : {{.Symbol}}
Purchased At   : {{datetime .AcquiredAt}}
Amount         : {{.Quantity}}
Price Bought   : {{.UnitCost}}
Live Price     : {{.LivePrice}}
Difference USD : {{.DiffUSD.SignedString}}
Difference %   : {{.DiffPct}}%{{reset}}

{{end}}`

// PurchaseHistory renders the lots purchased inside the report's time
// range, oldest first per symbol.
func PurchaseHistory(r *portfolio.PurchaseHistoryReport) string {
	return renderTemplate("purchases", purchasesTemplate, r)
}
