package renderer

import "github.com/kmcgrail/portfolio"

const salesTemplate = `{{range .Rows}}{{color .DiffUSD}}Asset Name         : {{.FullName}}
Asset Symbol       : {{.Symbol}}
Sold At            : {{datetime .SoldAt}}
Amount Sold        : {{.Quantity}}
Avg Purchase Price : {{.AvgCostBasis}}
Sale Price         : {{.SalePrice}}
Difference USD     : {{.DiffUSD.SignedString}}
Difference %       : {{.DiffPct}}%{{reset}}

{{end}}`

// Sales renders the realized sales inside the report's time range.
func Sales(r *portfolio.SalesReport) string {
	return renderTemplate("sales", salesTemplate, r)
}
