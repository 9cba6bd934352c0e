package tally

import "github.com/shopspring/decimal"

// dec is a helper for tests to build decimals from const.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// testPolicy is the fixed policy used by engine tests: dynamic discovery,
// RUB home, THB local, anchor at the end of 2023.
func testPolicy() ReplayPolicy {
	return ReplayPolicy{
		HomeCurrency:  "RUB",
		LocalCurrency: "THB",
		Dynamic:       true,
		AnchorDate:    NewDate(2023, 12, 31),
	}
}

// legacyPolicy is testPolicy without dynamic discovery.
func legacyPolicy() ReplayPolicy {
	p := testPolicy()
	p.Dynamic = false
	return p
}

// checkpointed builds an account with a balance checkpoint.
func checkpointed(name, currency string, balance float64, on Date, txID string) Account {
	return Account{
		ID:          "acc-" + NormalizeName(name),
		Name:        name,
		Currency:    currency,
		Type:        Bank,
		Balance:     dec(balance),
		BalanceDate: on,
		BalanceTxID: txID,
	}
}

// plain builds an account without a checkpoint.
func plain(name, currency string, balance float64) Account {
	return Account{
		ID:       "acc-" + NormalizeName(name),
		Name:     name,
		Currency: currency,
		Type:     Cash,
		Balance:  dec(balance),
	}
}
