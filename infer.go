package tally

import "strings"

// Known currency code sets for inference. Kept deliberately small: these are
// the codes that actually appear in imported spreadsheets.
var (
	cryptoCodes = map[string]bool{"BTC": true, "USDT": true, "ETH": true}
	fiatCodes   = map[string]bool{"USD": true, "EUR": true, "HKD": true, "MYR": true, "RUB": true, "THB": true, "KZT": true}
)

// nameHint maps a keyword embedded in an account name to a currency and,
// optionally, a forced account type.
type nameHint struct {
	keyword  string
	currency string
	typ      AccountType // "" means keep the default
}

// nameHints are scanned in order, first match wins. "usdt" is listed before
// "usd" so the longer token is not shadowed by its prefix.
var nameHints = []nameHint{
	{"usdt", "USDT", Crypto},
	{"btc", "BTC", Crypto},
	{"usd", "USD", ""},
	{"eur", "EUR", ""},
	{"hkd", "HKD", ""},
	{"myr", "MYR", ""},
	{"rub", "RUB", Bank},
	{"main", "RUB", Bank},
}

// bankKeywords mark names that denote a bank or card account.
var bankKeywords = []string{"bank", "card", "main"}

// Infer guesses the type and currency of an account from its free-text name
// and an optional currency code detected by the importer. It is pure and
// deterministic: the same inputs always produce the same result, which the
// registry relies on when synthesizing accounts.
//
// localCurrency is the currency assigned when nothing else matches.
func Infer(name, detectedCurrency, localCurrency string) (AccountType, string) {
	typ, currency := Cash, localCurrency
	lower := strings.ToLower(name)

	code := strings.ToUpper(strings.TrimSpace(detectedCurrency))
	if len(code) == 3 || cryptoCodes[code] {
		currency = code
		if cryptoCodes[code] {
			typ = Crypto
		} else if fiatCodes[code] && containsAny(lower, bankKeywords) {
			typ = Bank
		}
	} else {
		for _, h := range nameHints {
			if strings.Contains(lower, h.keyword) {
				currency = h.currency
				if h.typ != "" {
					typ = h.typ
				}
				break
			}
		}
	}

	// A crypto keyword in the name wins over everything else.
	if strings.Contains(lower, "btc") || strings.Contains(lower, "usdt") {
		typ = Crypto
	}

	return typ, currency
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
