package renderer

import "github.com/kmcgrail/portfolio"

const quotesTemplate = `{{range .}}Asset Name   : {{.FullName}}
Asset Symbol : {{.Symbol}}
Asset Class  : {{.Class}}
Quoted At    : {{datetime .Timestamp}}
Live Price   : {{.Price}}

{{end}}`

// Quotes renders a batch of live quotes.
func Quotes(quotes []portfolio.Quote) string {
	return renderTemplate("quotes", quotesTemplate, quotes)
}
