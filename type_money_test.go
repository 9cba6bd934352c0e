package tally

import (
	"strings"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a := M(100, "RUB")
	b := M(40, "RUB")

	if got, want := a.Add(b), M(140, "RUB"); !got.Equal(want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), M(60, "RUB"); !got.Equal(want) {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := b.Neg(), M(-40, "RUB"); !got.Equal(want) {
		t.Errorf("Neg = %v, want %v", got, want)
	}
	if got, want := M(-40, "RUB").Abs(), b; !got.Equal(want) {
		t.Errorf("Abs = %v, want %v", got, want)
	}
	if got, want := a.AddAmount(dec(5)), M(105, "RUB"); !got.Equal(want) {
		t.Errorf("AddAmount = %v, want %v", got, want)
	}
}

func TestMoneyPredicates(t *testing.T) {
	if !M(1, "RUB").IsPositive() || M(-1, "RUB").IsPositive() {
		t.Error("IsPositive is wrong")
	}
	if !M(-1, "RUB").IsNegative() || M(1, "RUB").IsNegative() {
		t.Error("IsNegative is wrong")
	}
	if M(100, "RUB").Equal(M(100, "USD")) {
		t.Error("Equal must compare the currency too")
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// The "" currency is weak: it adopts the other operand's currency.
	got := Money{}.Add(M(10, "THB"))
	if got.Currency() != "THB" || !got.Equal(M(10, "THB")) {
		t.Errorf("weak add = %v %s", got.Amount(), got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("mixing two real currencies must panic")
		}
	}()
	M(1, "RUB").Add(M(1, "USD"))
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "RUB").SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want \"-\"", got)
	}
	if got := M(100, "RUB").SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("positive SignedString = %q, want a leading +", got)
	}
	if got := M(-100, "RUB").SignedString(); got != M(-100, "RUB").String() {
		t.Errorf("negative SignedString = %q, want the plain form %q",
			got, M(-100, "RUB").String())
	}
}
