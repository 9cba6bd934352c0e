package renderer

import (
	"sort"

	"github.com/okarpov/tally"
	"github.com/shopspring/decimal"
)

// AccountLine is one row of the net-worth table, already formatted.
type AccountLine struct {
	Name        string
	Type        string
	Balance     string
	Equivalent  string
	Synthesized bool
}

// Summary is the view model of the net-worth report.
type Summary struct {
	Date         string
	HomeCurrency string
	Accounts     []AccountLine
	NetWorth     string
	// Live is false when the valuation fell back to the built-in rate table.
	Live bool
}

// NewSummary builds the net-worth view from a valuated replay result.
// Rows are ordered by descending home-currency value.
func NewSummary(on tally.Date, statuses []tally.AccountStatus, total decimal.Decimal, homeCurrency string, live bool) *Summary {
	sorted := make([]tally.AccountStatus, len(statuses))
	copy(sorted, statuses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Equivalent.GreaterThan(sorted[j].Equivalent)
	})

	s := &Summary{
		Date:         on.String(),
		HomeCurrency: homeCurrency,
		NetWorth:     tally.M(total, homeCurrency).String(),
		Live:         live,
	}
	for i := range sorted {
		a := &sorted[i]
		s.Accounts = append(s.Accounts, AccountLine{
			Name:        a.Name,
			Type:        string(a.Type),
			Balance:     a.CurrentMoney().String(),
			// Signed form: debts read negative at a glance, empty accounts "-".
			Equivalent: a.EquivalentMoney(homeCurrency).SignedString(),
			Synthesized: a.Synthesized,
		})
	}
	return s
}
