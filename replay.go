package tally

// Replay walks all transactions once, in canonical order, and accumulates
// their effects into the registry's running balances. Transfers fan out to
// the destination account under the same checkpoint rules as the source:
// the two sides are gated independently, so a transfer can be excluded from
// an already-checkpointed source and still credit its destination.
//
// Replay mutates the registry and returns its working set. It has no fatal
// path: unknown accounts are synthesized, undated rows sort last, and the
// result is always a best-effort consistent snapshot.
func Replay(r *Registry, transactions []Transaction) []AccountStatus {
	txs := make([]Transaction, len(transactions))
	copy(txs, transactions)
	SortForReplay(txs)

	for _, tx := range txs {
		src := r.GetOrCreate(tx.Account, tx.OriginalCurrency)
		source := &r.accounts[src]
		if shouldApply(source, tx, r.policy) {
			source.Current = source.Current.Add(effectiveAmount(source, tx, r.policy.HomeCurrency))
		}

		if tx.Type != Transfer || tx.Category == "" || tx.Category == Uncategorized {
			continue
		}
		dst := r.GetOrCreate(tx.Category, tx.OriginalCurrency)
		if dst == src {
			// A self-transfer would double-apply; skip the fan-out.
			continue
		}
		dest := &r.accounts[dst]
		if shouldApply(dest, tx, r.policy) {
			dest.Current = dest.Current.Add(transferInflow(tx))
		}
	}

	return r.accounts
}
