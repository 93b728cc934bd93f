package domain

import (
	"github.com/shopspring/decimal"
)

// Account holds the ledger state for one client. Accounts are created lazily
// on the first successful deposit and are never deleted.
type Account struct {
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// Total is the account's full balance. It is always derived from Available
// and Held, never stored.
func (a Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Snapshot renders the account for emission, computing the total at that
// moment.
func (a Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		ClientID:  a.ClientID,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}

// AccountSnapshot is the read-only emission view of an account.
type AccountSnapshot struct {
	ClientID  uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}
