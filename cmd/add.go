package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/okarpov/tally"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date             string
	txType           string
	account          string
	category         string
	amount           string
	originalAmount   string
	originalCurrency string
	note             string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a transaction to the book" }
func (*addCmd) Usage() string {
	return `tally add -t <type> -a <account> -m <amount> [-d <date>] [-c <category>] [-o <amount> -oc <currency>] [-n <note>]

  Appends a transaction to transactions.jsonl. Expenses and outgoing
  transfers take a negative amount. For a transfer, -c names the
  destination account.

Usage Examples:
# 250 RUB groceries from the cash account.
$ tally add -t expense -a "Cash" -c food -m -250

# Move 100 USDT to the exchange account.
$ tally add -t transfer -a "Main card" -c "Bybit USDT" -m -9000 -o -100 -oc USDT
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tally.Today().String(), "Transaction date.")
	f.StringVar(&c.txType, "t", "", "Transaction type: income, expense or transfer.")
	f.StringVar(&c.account, "a", "", "Account name, as free text.")
	f.StringVar(&c.category, "c", "", "Category, or the destination account for a transfer.")
	f.StringVar(&c.amount, "m", "", "Amount in the home currency; negative for outflows.")
	f.StringVar(&c.originalAmount, "o", "", "Amount in the account's own currency, when it differs.")
	f.StringVar(&c.originalCurrency, "oc", "", "Currency of the original amount.")
	f.StringVar(&c.note, "n", "", "Free-text note.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tally.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var txType tally.TxType
	switch tally.TxType(c.txType) {
	case tally.Income, tally.Expense, tally.Transfer:
		txType = tally.TxType(c.txType)
	default:
		fmt.Fprintf(os.Stderr, "Unknown transaction type %q: want income, expense or transfer\n", c.txType)
		return subcommands.ExitUsageError
	}

	if c.account == "" {
		fmt.Fprintln(os.Stderr, "An account name is required (-a)")
		return subcommands.ExitUsageError
	}

	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	tx := tally.Transaction{
		ID:       uuid.NewString(),
		Date:     on,
		Type:     txType,
		Account:  c.account,
		Category: c.category,
		Amount:   amount,
		Note:     c.note,
	}
	if c.originalAmount != "" {
		original, err := decimal.NewFromString(c.originalAmount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing original amount %q: %v\n", c.originalAmount, err)
			return subcommands.ExitUsageError
		}
		if c.originalCurrency == "" {
			fmt.Fprintln(os.Stderr, "An original amount needs its currency (-oc)")
			return subcommands.ExitUsageError
		}
		tx.OriginalAmount = original
		tx.OriginalCurrency = c.originalCurrency
	}

	if err := tally.AppendTransaction(*dataDir, tx); err != nil {
		return fail("Error appending transaction: %v", err)
	}

	fmt.Printf("Successfully appended transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}
