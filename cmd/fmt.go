package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/okarpov/tally"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the transactions file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `tally fmt

  Reads all transactions, sorts them into canonical replay order and
  writes them back in place. Rows with an unparseable date are kept,
  undated, at the end of the file.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		return fail("Error loading book: %v", err)
	}
	if len(book.Transactions) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no transactions to format.")
		return subcommands.ExitSuccess
	}

	if err := tally.SaveTransactions(*dataDir, book.Transactions); err != nil {
		return fail("Error saving transactions: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Formatted %d transactions.\n", len(book.Transactions))
	return subcommands.ExitSuccess
}
