package tally

import (
	"github.com/google/uuid"
)

// ReplayPolicy configures one replay pass. It collapses the historical
// "legacy vs dynamic" account-resolution modes into a single strategy value.
type ReplayPolicy struct {
	// HomeCurrency is the currency net worth is reported in.
	HomeCurrency string

	// LocalCurrency is assigned to synthesized accounts when inference is
	// inconclusive.
	LocalCurrency string

	// Dynamic enables account discovery from transaction text. In dynamic
	// mode, accounts without a checkpoint ignore transactions dated on or
	// before AnchorDate.
	Dynamic bool

	// AnchorDate is the global cutoff for accounts without a checkpoint in
	// dynamic mode. Their stored balance is the balance as of this date.
	AnchorDate Date
}

// DefaultPolicy returns the replay policy used by the CLI: dynamic
// discovery, RUB reporting, THB for unidentifiable local cash accounts.
func DefaultPolicy() ReplayPolicy {
	return ReplayPolicy{
		HomeCurrency:  "RUB",
		LocalCurrency: "THB",
		Dynamic:       true,
		AnchorDate:    NewDate(2023, 12, 31),
	}
}

// accountNamespace seeds the deterministic ids of synthesized accounts.
var accountNamespace = uuid.MustParse("5f2de1f3-8c6b-4a8e-9d25-6a41c3a3b97e")

// Registry holds the mutable working set of accounts during one replay:
// the seeded persisted accounts plus any accounts synthesized from
// transaction text. A Registry must not be shared between replays; the
// per-account checkpoint cursor would leak between passes.
type Registry struct {
	accounts []AccountStatus
	policy   ReplayPolicy
}

// Seed builds a fresh registry from persisted accounts. Every status starts
// with the stored balance as its running balance.
func Seed(persisted []Account, policy ReplayPolicy) *Registry {
	r := &Registry{
		accounts: make([]AccountStatus, 0, len(persisted)),
		policy:   policy,
	}
	for _, a := range persisted {
		r.accounts = append(r.accounts, AccountStatus{Account: a, Current: a.Balance})
	}
	return r
}

// Statuses returns the registry's working set. The slice is owned by the
// registry; callers should treat it as read-only once replay has finished.
func (r *Registry) Statuses() []AccountStatus { return r.accounts }

// Find resolves a free-text name to an account index, or -1. When several
// accounts normalize to the same name, the one carrying a checkpoint wins;
// otherwise the first seeded one does (stable first-match).
func (r *Registry) Find(name string) int {
	norm := NormalizeName(name)
	found := -1
	for i := range r.accounts {
		if NormalizeName(r.accounts[i].Name) != norm {
			continue
		}
		if r.accounts[i].Checkpointed() {
			return i
		}
		if found < 0 {
			found = i
		}
	}
	return found
}

// GetOrCreate resolves a name like Find, synthesizing a new account when no
// existing one matches. detectedCurrency is the importer's currency hint for
// the row that referenced the name. Creation never fails: inference always
// produces a type and currency.
func (r *Registry) GetOrCreate(name, detectedCurrency string) int {
	if i := r.Find(name); i >= 0 {
		return i
	}
	typ, currency := Infer(name, detectedCurrency, r.policy.LocalCurrency)
	id := uuid.NewSHA1(accountNamespace, []byte(NormalizeName(name))).String()
	r.accounts = append(r.accounts, AccountStatus{
		Account: Account{
			ID:       id,
			Name:     name,
			Currency: currency,
			Type:     typ,
		},
		Synthesized: true,
	})
	return len(r.accounts) - 1
}
