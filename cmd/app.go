// Package cmd implements the CLI application to track accounts and net worth.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/okarpov/tally"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&accountsCmd{}, "reports")

	c.Register(&addCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".", "Path to the data directory holding accounts.jsonl and transactions.jsonl")
var homeCurrency = flag.String("home", "RUB", "Home currency net worth is reported in")
var localCurrency = flag.String("local", "THB", "Currency assumed for cash accounts when inference is inconclusive")
var legacyMode = flag.Bool("legacy", false, "Disable account discovery from transaction text")

// Policy builds the replay policy from the app flags.
func Policy() tally.ReplayPolicy {
	p := tally.DefaultPolicy()
	p.HomeCurrency = *homeCurrency
	p.LocalCurrency = *localCurrency
	p.Dynamic = !*legacyMode
	return p
}

// LoadBook reads the accounts and transactions from the app data directory.
func LoadBook() (*tally.Book, error) {
	return tally.LoadBook(*dataDir)
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}

func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
