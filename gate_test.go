package tally

import "testing"

func status(a Account) *AccountStatus {
	return &AccountStatus{Account: a, Current: a.Balance}
}

func TestGate_CheckpointDateOnly(t *testing.T) {
	on := NewDate(2024, 1, 10)
	a := status(checkpointed("Cash", "RUB", 1000, on, ""))

	tests := []struct {
		date Date
		want bool
	}{
		{on.Add(-1), false}, // before: baked into the balance
		{on, false},         // same day, no exact cut: closing balance for the day
		{on.Add(1), true},   // after: replayed
	}
	for _, tt := range tests {
		tx := Transaction{ID: "t", Date: tt.date, Type: Expense, Account: "Cash", Amount: dec(-1)}
		if got := shouldApply(a, tx, testPolicy()); got != tt.want {
			t.Errorf("shouldApply(date=%v) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestGate_CheckpointTransactionCut(t *testing.T) {
	on := NewDate(2024, 1, 10)
	a := status(checkpointed("Cash", "RUB", 1000, on, "tx1"))
	p := testPolicy()

	before := Transaction{ID: "tx0", Date: on, Amount: dec(-5)}
	cut := Transaction{ID: "tx1", Date: on, Amount: dec(-200)}
	after := Transaction{ID: "tx2", Date: on, Amount: dec(300)}

	// Walked in canonical order: rows before the cut are rejected.
	if shouldApply(a, before, p) {
		t.Error("a same-day row before the checkpoint transaction must be rejected")
	}
	// The checkpoint transaction itself is rejected but flips the cursor.
	if shouldApply(a, cut, p) {
		t.Error("the checkpoint transaction itself must be rejected")
	}
	// Everything after it applies.
	if !shouldApply(a, after, p) {
		t.Error("a same-day row after the checkpoint transaction must be accepted")
	}
	if !shouldApply(a, Transaction{ID: "tx3", Date: on}, p) {
		t.Error("the cursor must stay past the checkpoint")
	}
}

func TestGate_AnchorMode(t *testing.T) {
	p := testPolicy() // dynamic, anchor 2023-12-31
	a := status(plain("Cash", "THB", 100))

	if shouldApply(a, Transaction{ID: "t", Date: p.AnchorDate}, p) {
		t.Error("a row on the anchor date must be rejected in dynamic mode")
	}
	if shouldApply(a, Transaction{ID: "t", Date: p.AnchorDate.Add(-30)}, p) {
		t.Error("a row before the anchor date must be rejected in dynamic mode")
	}
	if !shouldApply(a, Transaction{ID: "t", Date: p.AnchorDate.Add(1)}, p) {
		t.Error("a row after the anchor date must be accepted")
	}
}

func TestGate_LegacyOpeningBalance(t *testing.T) {
	p := legacyPolicy()
	on := NewDate(2024, 3, 1)
	opening := Transaction{ID: "t", Date: on, Note: "Initial balance row", Amount: dec(100)}

	// Non-zero starting balance already represents the opening row.
	funded := status(plain("Cash", "THB", 100))
	if shouldApply(funded, opening, p) {
		t.Error("an opening-balance row must be skipped when the balance already covers it")
	}

	// A zero starting balance does not.
	empty := status(plain("Empty", "THB", 0))
	if !shouldApply(empty, opening, p) {
		t.Error("an opening-balance row must apply to an account with zero starting balance")
	}

	// Ordinary rows always apply in legacy mode, even old ones.
	old := Transaction{ID: "t", Date: NewDate(2020, 1, 1), Amount: dec(-5)}
	if !shouldApply(funded, old, p) {
		t.Error("legacy mode must accept ordinary rows regardless of date")
	}
}
