package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/okarpov/tally/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the persisted accounts" }
func (*accountsCmd) Usage() string {
	return `tally accounts

  Lists the persisted account definitions with their currency, stored
  balance and balance checkpoint.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		return fail("Error loading book: %v", err)
	}
	if len(book.Accounts) == 0 {
		fmt.Println("No accounts defined yet.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderAccounts(renderer.NewAccountList(book.Accounts)))
	return subcommands.ExitSuccess
}
