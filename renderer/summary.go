package renderer

import "github.com/kmcgrail/portfolio"

const summaryTemplate = `{{range .Rows}}{{color .DiffUSD}}Asset Name     : {{.FullName}}
Asset Symbol   : {{.Symbol}}
Asset Class    : {{.Class}}
Asset Amount   : {{.Quantity}}
Average Price  : {{.AvgCost}}
Live Price     : {{.LivePrice}}
Current Value  : {{.CurrentValue}}
Difference USD : {{.DiffUSD.SignedString}}
Difference %   : {{.DiffPct}}%{{reset}}

{{end}}`

// Summary renders the holdings summary, one block per symbol, colored by
// gain or loss against the average purchase price.
func Summary(r *portfolio.SummaryReport) string {
	return renderTemplate("summary", summaryTemplate, r)
}
