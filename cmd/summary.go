package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/okarpov/tally"
	"github.com/okarpov/tally/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date    string
	offline bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display account balances and net worth" }
func (*summaryCmd) Usage() string {
	return `tally summary [-d <date>] [-offline]

  Replays the transactions over the accounts and displays the balance of
  each account with its home-currency value and the total net worth.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tally.Today().String(), "Date for the summary.")
	f.BoolVar(&c.offline, "offline", false, "Skip the live rate fetch and use the built-in rate table.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tally.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		return fail("Error loading book: %v", err)
	}

	// Rows dated after the summary date are out of scope. Undated rows stay
	// in: their date is unknown, not future.
	txs := make([]tally.Transaction, 0, len(book.Transactions))
	for _, tx := range book.Transactions {
		if !tx.Date.IsZero() && tx.Date.After(on) {
			continue
		}
		txs = append(txs, tx)
	}

	policy := Policy()
	statuses := tally.Replay(tally.Seed(book.Accounts, policy), txs)

	table := tally.RateTable{Rates: tally.FallbackRates, Live: false}
	if !c.offline {
		table = tally.FetchRates(policy.HomeCurrency)
	}
	total := tally.Valuate(statuses, table.Rates, tally.FallbackRates)

	s := renderer.NewSummary(on, statuses, total, policy.HomeCurrency, table.Live)
	printMarkdown(renderer.RenderSummary(s))

	return subcommands.ExitSuccess
}
