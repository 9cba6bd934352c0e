package tally

import "github.com/shopspring/decimal"

// Rates maps a currency code to the value of one unit in the home currency.
type Rates map[string]float64

// rate resolves the multiplier for a currency: the live table first, then
// the fallback table, then 1. Treating an unknown currency as the home
// currency is a deliberate silent fallback, not an error: valuation must
// always produce a number for every account.
func rate(currency string, rates, fallback Rates) decimal.Decimal {
	if r, ok := rates[currency]; ok {
		return decimal.NewFromFloat(r)
	}
	if r, ok := fallback[currency]; ok {
		return decimal.NewFromFloat(r)
	}
	return decimal.NewFromInt(1)
}

// Valuate fills every account's home-currency equivalent from its running
// balance and returns the aggregate net worth.
func Valuate(accounts []AccountStatus, rates, fallback Rates) decimal.Decimal {
	total := decimal.Zero
	for i := range accounts {
		accounts[i].Equivalent = accounts[i].Current.Mul(rate(accounts[i].Currency, rates, fallback))
		total = total.Add(accounts[i].Equivalent)
	}
	return total
}
