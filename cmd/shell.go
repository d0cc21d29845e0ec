package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/kmcgrail/portfolio"
	"github.com/kmcgrail/portfolio/config"
	"github.com/kmcgrail/portfolio/renderer"
	"github.com/shopspring/decimal"
)

// shellCmd runs the interactive portfolio session. All state is in memory
// and lives for the duration of the session.
type shellCmd struct {
	balance float64
}

func (*shellCmd) Name() string { return "shell" }
func (*shellCmd) Synopsis() string { return "interactive portfolio session" }
func (*shellCmd) Usage() string {
	return `pfs shell [-balance <usd>]

  Starts the interactive menu session: buy and sell assets at live prices,
  deposit funds, and browse holdings, purchase and sale reports.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.balance, "balance", 0, "Opening cash balance in USD (defaults to OPENING_BALANCE_USD)")
}

const menu = `
+-------------------------------------------------+
|         Welcome to the Portfolio System         |
|                      Menu                       |
+-------------------------------------------------+

A - Purchase an asset.
B - Sell an asset.
C - Deposit funds.
D - Show available funds.
E - Get realtime quotes on specific assets.
F - Get total portfolio live value.
G - List all investments.
H - List investments of one asset class.
I - List investments matching symbols or names.
J - List assets purchased in an interval.
K - List assets sold in an interval.

Q - Exit the Portfolio System.
`

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	opening := cfg.OpeningBalance
	if c.balance > 0 {
		opening = c.balance
	}
	book := portfolio.NewBook(newProvider(cfg), portfolio.M(opening))

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(menu)
		choice := strings.ToLower(prompt(in, "Please type your option of choice"))
		switch choice {
		case "a":
			c.purchase(ctx, in, book)
		case "b":
			c.sell(ctx, in, book)
		case "c":
			c.deposit(in, book)
		case "d":
			fmt.Printf("\nAvailable funds: %s\n", book.Balance())
		case "e":
			c.quotes(ctx, in, cfg)
		case "f":
			c.totalValue(ctx, book)
		case "g":
			c.summary(ctx, book)
		case "h":
			c.summaryByClass(ctx, in, book)
		case "i":
			c.summaryByNames(ctx, in, book)
		case "j":
			c.purchasesInRange(ctx, in, book)
		case "k":
			c.salesInRange(in, book)
		case "q":
			fmt.Println("\nThank you for using the Portfolio System")
			return subcommands.ExitSuccess
		case "":
			return subcommands.ExitSuccess
		default:
			fmt.Println("\nPlease enter a valid option.")
		}
	}
}

func (c *shellCmd) purchase(ctx context.Context, in *bufio.Scanner, book *portfolio.Book) {
	symbol := prompt(in, "Asset symbol")
	quantity, err := promptQuantity(in)
	if err != nil {
		fmt.Printf("Invalid quantity: %v\n", err)
		return
	}
	lot, err := book.Purchase(ctx, symbol, quantity)
	if err != nil {
		fmt.Printf("Purchase failed: %v\n", err)
		return
	}
	fmt.Printf("\nBought %s %s at %s. Available funds: %s\n",
		lot.Quantity, lot.Symbol, lot.UnitCost, book.Balance())
}

func (c *shellCmd) sell(ctx context.Context, in *bufio.Scanner, book *portfolio.Book) {
	symbol := prompt(in, "Asset symbol")
	quantity, err := promptQuantity(in)
	if err != nil {
		fmt.Printf("Invalid quantity: %v\n", err)
		return
	}
	sale, err := book.Sell(ctx, symbol, quantity)
	if err != nil {
		fmt.Printf("Sale failed: %v\n", err)
		return
	}
	fmt.Printf("\nSold %s %s at %s (cost basis %s). Available funds: %s\n",
		sale.Quantity, sale.Symbol, sale.SalePrice, sale.AvgCostBasis, book.Balance())
}

func (c *shellCmd) deposit(in *bufio.Scanner, book *portfolio.Book) {
	raw := prompt(in, "Amount in USD")
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		fmt.Println("Please enter a positive USD amount.")
		return
	}
	book.AddFunds(portfolio.M(amount))
	fmt.Printf("\nAvailable funds: %s\n", book.Balance())
}

func (c *shellCmd) quotes(ctx context.Context, in *bufio.Scanner, cfg *config.Config) {
	raw := prompt(in, "Symbols (comma separated)")
	symbols := splitList(raw)
	if len(symbols) == 0 {
		fmt.Println("Please enter at least one symbol.")
		return
	}
	quotes, err := newProvider(cfg).Quotes(ctx, symbols)
	if err != nil {
		fmt.Printf("Quote lookup failed: %v\n", err)
		return
	}
	printReport(renderer.Quotes(quotes), "No symbol could be resolved.")
}

func (c *shellCmd) totalValue(ctx context.Context, book *portfolio.Book) {
	total, err := book.TotalValue(ctx)
	if err != nil {
		fmt.Printf("Valuation failed: %v\n", err)
		return
	}
	fmt.Printf("\nTotal portfolio live value: %s\n", total)
}

func (c *shellCmd) summary(ctx context.Context, book *portfolio.Book) {
	report, err := book.Summary(ctx)
	if err != nil {
		fmt.Printf("Report failed: %v\n", err)
		return
	}
	printReport(renderer.Summary(report), "No assets in portfolio.")
}

func (c *shellCmd) summaryByClass(ctx context.Context, in *bufio.Scanner, book *portfolio.Book) {
	raw := prompt(in, "Asset class (equity or crypto)")
	class, err := portfolio.ParseAssetClass(strings.ToLower(raw))
	if err != nil {
		fmt.Println("Please enter equity or crypto.")
		return
	}
	report, err := book.SummaryByClass(ctx, class)
	if err != nil {
		fmt.Printf("Report failed: %v\n", err)
		return
	}
	printReport(renderer.Summary(report), "No assets of that class in portfolio.")
}

func (c *shellCmd) summaryByNames(ctx context.Context, in *bufio.Scanner, book *portfolio.Book) {
	raw := prompt(in, "Symbols or names (comma separated)")
	names := splitList(raw)
	if len(names) == 0 {
		fmt.Println("Please enter at least one symbol or name.")
		return
	}
	report, err := book.SummaryByNames(ctx, names)
	if err != nil {
		fmt.Printf("Report failed: %v\n", err)
		return
	}
	printReport(renderer.Summary(report), "No matching assets in portfolio.")
}

func (c *shellCmd) purchasesInRange(ctx context.Context, in *bufio.Scanner, book *portfolio.Book) {
	start, end, err := promptRange(in)
	if err != nil {
		fmt.Printf("Invalid range: %v\n", err)
		return
	}
	report, err := book.PurchasesInRange(ctx, start, end)
	if err != nil {
		fmt.Printf("Report failed: %v\n", err)
		return
	}
	printReport(renderer.PurchaseHistory(report), "No purchases in that interval.")
}

func (c *shellCmd) salesInRange(in *bufio.Scanner, book *portfolio.Book) {
	start, end, err := promptRange(in)
	if err != nil {
		fmt.Printf("Invalid range: %v\n", err)
		return
	}
	printReport(renderer.Sales(book.SalesInRange(start, end)), "No sales in that interval.")
}

// prompt reads one trimmed line of input.
func prompt(in *bufio.Scanner, label string) string {
	fmt.Printf("\n%s: ", label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func promptQuantity(in *bufio.Scanner) (portfolio.Quantity, error) {
	raw := prompt(in, "Amount")
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return portfolio.Quantity{}, err
	}
	return portfolio.Q(value), nil
}

// promptRange reads an inclusive time range, each bound either a UNIX
// timestamp in seconds or a YYYY-MM-DD date.
func promptRange(in *bufio.Scanner) (start, end time.Time, err error) {
	if start, err = parseTime(prompt(in, "Start date (YYYY-MM-DD or UNIX seconds)")); err != nil {
		return
	}
	end, err = parseTime(prompt(in, "End date (YYYY-MM-DD or UNIX seconds)"))
	return
}

func parseTime(raw string) (time.Time, error) {
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func printReport(rendered, emptyMessage string) {
	if strings.TrimSpace(rendered) == "" {
		fmt.Printf("\n%s\n", emptyMessage)
		return
	}
	fmt.Printf("\n%s", rendered)
}
