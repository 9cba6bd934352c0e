package tally

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account.
type AccountType string

const (
	Wallet AccountType = "wallet"
	Crypto AccountType = "crypto"
	Bank   AccountType = "bank"
	Cash   AccountType = "cash"
	Card   AccountType = "card"
)

// Account is a persisted account definition. Transactions reference
// accounts by free-text name, so the join key is the normalized name, not
// the id.
type Account struct {
	ID       string
	Name     string
	Currency string
	Type     AccountType

	// Balance is the balance as of the checkpoint, or the opening balance
	// when no checkpoint is set.
	Balance decimal.Decimal

	// BalanceDate is the checkpoint date. Zero means no checkpoint: the
	// account is in legacy anchor mode.
	BalanceDate Date

	// BalanceTxID is the id of the last transaction already baked into
	// Balance. Meaningful only together with BalanceDate.
	BalanceTxID string
}

// Checkpointed reports whether the account carries a balance checkpoint.
func (a Account) Checkpointed() bool { return !a.BalanceDate.IsZero() }

// NormalizeName is the join key between a transaction's free text and an
// account: lowercase with all whitespace removed.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}

// checkpointState tracks, during one replay of one account, where the walk
// stands relative to the account's checkpoint transaction.
type checkpointState int

const (
	// beforeCheckpoint: the checkpoint transaction has not been reached yet;
	// same-day rows are still baked into the stored balance.
	beforeCheckpoint checkpointState = iota
	// atCheckpoint: the walk is consuming the checkpoint transaction itself.
	// It is excluded, being already counted in the stored balance.
	atCheckpoint
	// pastCheckpoint: the checkpoint row is behind; same-day rows now apply.
	pastCheckpoint
)

// AccountStatus is an Account plus its replay outcome: the running balance,
// the home-currency equivalent, and the per-replay checkpoint cursor. A
// status lives for the duration of one replay only; concurrent replays must
// each seed their own copies.
type AccountStatus struct {
	Account

	// Current is the running balance in the account's own currency.
	Current decimal.Decimal

	// Equivalent is the home-currency value of Current, filled by Valuate.
	Equivalent decimal.Decimal

	// Synthesized marks accounts discovered from transaction text during
	// replay, as opposed to persisted ones.
	Synthesized bool

	state checkpointState
}

// CurrentMoney returns the running balance as Money in the account currency.
func (s *AccountStatus) CurrentMoney() Money { return M(s.Current, s.Currency) }

// EquivalentMoney returns the home-currency value as Money.
func (s *AccountStatus) EquivalentMoney(homeCurrency string) Money {
	return M(s.Equivalent, homeCurrency)
}
