package tally

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeTransactions(t *testing.T) {
	input := `{"id":"t1","date":"2024-01-10","type":"expense","account":"Cash","category":"food","amount":-200,"index":5}
{"id":"t2","date":"2024-01-12","type":"transfer","account":"Cash","category":"Wallet","amount":-50,"originalAmount":45,"originalCurrency":"THB","note":"top up"}
`
	txs, err := DecodeTransactions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("decoded %d transactions, want 2", len(txs))
	}

	t1 := txs[0]
	if t1.ID != "t1" || t1.Type != Expense || t1.Account != "Cash" || t1.Index != 5 {
		t.Errorf("t1 decoded as %+v", t1)
	}
	if !t1.Date.Equal(NewDate(2024, 1, 10)) {
		t.Errorf("t1.Date = %v, want 2024-01-10", t1.Date)
	}
	if !t1.Amount.Equal(dec(-200)) {
		t.Errorf("t1.Amount = %v, want -200", t1.Amount)
	}

	t2 := txs[1]
	if t2.Type != Transfer || t2.Category != "Wallet" || t2.OriginalCurrency != "THB" {
		t.Errorf("t2 decoded as %+v", t2)
	}
	if !t2.OriginalAmount.Equal(dec(45)) {
		t.Errorf("t2.OriginalAmount = %v, want 45", t2.OriginalAmount)
	}
}

func TestDecodeTransactions_BadDateIsUndated(t *testing.T) {
	input := `{"id":"t1","date":"garbage","type":"income","account":"Cash","amount":10}
{"id":"t2","date":"2024-01-02","type":"income","account":"Cash","amount":20}
`
	txs, err := DecodeTransactions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("a bad date must not fail the decode: %v", err)
	}
	if !txs[0].Date.IsZero() {
		t.Errorf("t1.Date = %v, want undated", txs[0].Date)
	}

	SortForReplay(txs)
	if txs[len(txs)-1].ID != "t1" {
		t.Error("the undated row must sort last")
	}
}

func TestDecodeTransactions_MalformedLineFails(t *testing.T) {
	if _, err := DecodeTransactions(strings.NewReader("not json\n")); err == nil {
		t.Error("a malformed line must fail the decode")
	}
}

func TestEncodeTransactions_CanonicalOrder(t *testing.T) {
	txs := []Transaction{
		{ID: "late", Date: NewDate(2024, 2, 1), Type: Income, Account: "Cash", Amount: dec(1)},
		{ID: "early-low", Date: NewDate(2024, 1, 1), Type: Income, Account: "Cash", Amount: dec(1), Index: 1},
		{ID: "early-high", Date: NewDate(2024, 1, 1), Type: Income, Account: "Cash", Amount: dec(1), Index: 9},
	}

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, txs); err != nil {
		t.Fatalf("EncodeTransactions() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	wantOrder := []string{"early-high", "early-low", "late"}
	for i, want := range wantOrder {
		if !strings.Contains(lines[i], `"id":"`+want+`"`) {
			t.Errorf("line %d = %s, want id %q", i, lines[i], want)
		}
	}

	// The written stream decodes back to the same records.
	back, err := DecodeTransactions(&buf)
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(back) != len(txs) {
		t.Errorf("round trip lost records: %d of %d", len(back), len(txs))
	}
}

func TestDecodeAccounts(t *testing.T) {
	input := `{"id":"a1","name":"Cash","currency":"RUB","type":"cash","balance":1000,"balance_date":"2024-01-10","balance_checkpoint_tx_id":"tx1"}
{"id":"a2","name":"Wallet","currency":"THB","type":"wallet","balance":200}
`
	accounts, err := DecodeAccounts(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeAccounts() error = %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("decoded %d accounts, want 2", len(accounts))
	}

	a := accounts[0]
	if !a.Checkpointed() || a.BalanceTxID != "tx1" || !a.BalanceDate.Equal(NewDate(2024, 1, 10)) {
		t.Errorf("a1 decoded as %+v", a)
	}
	if !a.Balance.Equal(dec(1000)) {
		t.Errorf("a1.Balance = %v, want 1000", a.Balance)
	}
	if accounts[1].Checkpointed() {
		t.Error("a2 must not be checkpointed")
	}
}

func TestEncodeAccounts_OmitsEmptyCheckpoint(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeAccounts(&buf, []Account{plain("Wallet", "THB", 200)}); err != nil {
		t.Fatalf("EncodeAccounts() error = %v", err)
	}
	if strings.Contains(buf.String(), "balance_date") {
		t.Errorf("unexpected checkpoint fields in %s", buf.String())
	}
}
