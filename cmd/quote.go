package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kmcgrail/portfolio"
	"github.com/kmcgrail/portfolio/config"
	"github.com/kmcgrail/portfolio/renderer"
)

// quoteCmd fetches live quotes for the symbols given as arguments.
type quoteCmd struct{}

func (*quoteCmd) Name() string { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch live quotes for one or more symbols" }
func (*quoteCmd) Usage() string {
	return `pfs quote <symbol> [<symbol>...]

  Fetches the current market quote for each resolvable symbol.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one symbol is required")
		return subcommands.ExitUsageError
	}
	cfg := args[0].(*config.Config)
	provider := newProvider(cfg)

	quotes, err := provider.Quotes(ctx, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quotes: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(quotes) == 0 {
		fmt.Println("No symbol could be resolved.")
		return subcommands.ExitSuccess
	}
	fmt.Print(renderer.Quotes(quotes))
	return subcommands.ExitSuccess
}

// newProvider builds the Yahoo quote client from configuration.
func newProvider(cfg *config.Config) *portfolio.YahooClient {
	return portfolio.NewYahooClient(portfolio.YahooConfig{
		BaseURL:  cfg.API.Yahoo.Url,
		APIKey:   cfg.API.Yahoo.Key,
		Timeout:  cfg.API.Timeout,
		CacheTTL: cfg.Cache.QuotesExpiration,
		Debug:    cfg.API.Debug,
	})
}
