package tally

// shouldApply decides whether a transaction's effect on the given account is
// replayed or already represented by the account's stored balance. It must
// be called with transactions in canonical replay order: on the checkpoint
// day it advances the account's checkpoint cursor, so it is not a pure
// function of (account, tx) alone.
func shouldApply(a *AccountStatus, tx Transaction, policy ReplayPolicy) bool {
	if a.Checkpointed() {
		return applyCheckpointed(a, tx)
	}

	// Legacy anchor mode: no per-account checkpoint.
	if policy.Dynamic {
		// The stored balance stands for everything up to the anchor date.
		return tx.Date.After(policy.AnchorDate)
	}
	// A manually entered opening-balance row duplicates a non-zero starting
	// balance; skip it.
	if tx.IsOpeningBalance() && !a.Balance.IsZero() {
		return false
	}
	return true
}

func applyCheckpointed(a *AccountStatus, tx Transaction) bool {
	switch {
	case tx.Date.Before(a.BalanceDate):
		return false // already baked into the stored balance
	case tx.Date.After(a.BalanceDate):
		return true
	}

	// Same day as the checkpoint.
	if a.BalanceTxID == "" {
		// No exact cut: the stored balance is the closing balance for the
		// whole day.
		return false
	}
	switch a.state {
	case beforeCheckpoint:
		if tx.ID == a.BalanceTxID {
			a.state = atCheckpoint
		}
		return false
	default:
		a.state = pastCheckpoint
		return true
	}
}
