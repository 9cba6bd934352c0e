package tally

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TxType identifies the kind of a transaction.
type TxType string

const (
	Income   TxType = "income"
	Expense  TxType = "expense"
	Transfer TxType = "transfer"
)

// Uncategorized is the sentinel category for rows the importer could not
// classify. A transfer whose destination is this sentinel has no real
// destination account and is not fanned out.
const Uncategorized = "uncategorized"

// Transaction is one imported financial event. Records are produced by the
// spreadsheet import pipeline and are immutable once created; the engine
// only reads them.
type Transaction struct {
	ID   string // stable identifier, unique within one import
	Date Date   // calendar date; zero means unparseable, sorts last
	Type TxType

	// Account is the free-text name the row was recorded against (the source
	// for all types). Category doubles as the destination account name for
	// transfers.
	Account  string
	Category string

	// Amount is the signed magnitude in the row's primary currency. The
	// importer owns the sign convention: income positive, expense negative
	// or positive, transfer "outflow from source".
	Amount decimal.Decimal

	// OriginalAmount and OriginalCurrency are an optional secondary
	// representation of the same event, used when the account's native
	// currency differs from the primary amount's currency.
	OriginalAmount   decimal.Decimal
	OriginalCurrency string

	Note string

	// Index is a tie-break ordinal for rows sharing the same date,
	// reconstructing the original position in the imported file.
	Index int
}

// IsOpeningBalance reports whether the row is a manually entered opening
// balance marker. Such rows are skipped for accounts whose starting balance
// already represents them, to avoid double counting.
func (t Transaction) IsOpeningBalance() bool {
	note := strings.ToLower(t.Note)
	return strings.Contains(note, "initial balance") || strings.Contains(note, "start balance")
}

// replayLess is the canonical replay order: date ascending, undated rows
// last; on the same date higher Index first. The same-day descending Index
// reconstructs last-to-first-in-file insertion order, which the checkpoint
// logic depends on for determinism.
func replayLess(a, b Transaction) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.Index > b.Index
}

// SortForReplay sorts transactions into canonical replay order in place.
// The sort is stable so equal (date, index) pairs keep their relative order.
func SortForReplay(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return replayLess(txs[i], txs[j])
	})
}

// effectiveAmount returns the signed amount a transaction contributes to the
// given account's balance. When the account is held in a non-home currency
// that matches the row's original currency, the original amount is the
// native one; otherwise the primary amount applies as given. The engine
// never re-signs amounts: sign correctness is the producer's contract, and
// keeping the rule in one place lets the convention change without touching
// the replay loop.
func effectiveAmount(a *AccountStatus, tx Transaction, homeCurrency string) decimal.Decimal {
	if a.Currency != homeCurrency && tx.OriginalCurrency != "" && a.Currency == tx.OriginalCurrency {
		return tx.OriginalAmount
	}
	return tx.Amount
}

// transferInflow returns the magnitude credited to a transfer's destination:
// the original amount when positive, else the primary amount, always as an
// absolute value.
func transferInflow(tx Transaction) decimal.Decimal {
	if tx.OriginalAmount.IsPositive() {
		return tx.OriginalAmount
	}
	return tx.Amount.Abs()
}
