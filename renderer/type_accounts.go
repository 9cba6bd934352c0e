package renderer

import (
	"fmt"

	"github.com/okarpov/tally"
)

// AccountDetail is one row of the account listing.
type AccountDetail struct {
	Name     string
	Type     string
	Currency string
	Balance  string
	// Checkpoint describes the balance checkpoint, or "-" when the account
	// has none.
	Checkpoint string
}

// AccountList is the view model of the account listing.
type AccountList struct {
	Accounts []AccountDetail
}

// NewAccountList builds the listing view from persisted accounts, in their
// stored order.
func NewAccountList(accounts []tally.Account) *AccountList {
	l := &AccountList{}
	for _, a := range accounts {
		detail := AccountDetail{
			Name:       a.Name,
			Type:       string(a.Type),
			Currency:   a.Currency,
			Balance:    tally.M(a.Balance, a.Currency).String(),
			Checkpoint: "-",
		}
		if a.Checkpointed() {
			detail.Checkpoint = a.BalanceDate.String()
			if a.BalanceTxID != "" {
				detail.Checkpoint = fmt.Sprintf("%s (tx %s)", a.BalanceDate, a.BalanceTxID)
			}
		}
		l.Accounts = append(l.Accounts, detail)
	}
	return l
}
