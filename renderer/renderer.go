// Package renderer formats report structs into colored terminal text.
package renderer

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/kmcgrail/portfolio"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// funcs are the helpers available to every report template.
var funcs = template.FuncMap{
	// color picks green for a gain and red for a loss.
	"color": func(diff portfolio.Money) string {
		if diff.IsNegative() {
			return ansiRed
		}
		return ansiGreen
	},
	"reset": func() string { return ansiReset },
	"datetime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05 MST")
	},
}

// renderTemplate parses and executes one report template against data.
func renderTemplate(name, content string, data any) string {
	tmpl, err := template.New(name).Funcs(funcs).Parse(content)
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
