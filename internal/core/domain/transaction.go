package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies the operation a transaction record performs
// against the ledger.
type TransactionKind string

const (
	Deposit    TransactionKind = "deposit"
	Withdrawal TransactionKind = "withdrawal"
	Dispute    TransactionKind = "dispute"
	Resolve    TransactionKind = "resolve"
	Chargeback TransactionKind = "chargeback"
)

// ParseTransactionKind maps input text onto a TransactionKind, ignoring case
// and surrounding whitespace.
func ParseTransactionKind(s string) (TransactionKind, error) {
	kind := TransactionKind(strings.ToLower(strings.TrimSpace(s)))
	switch kind {
	case Deposit, Withdrawal, Dispute, Resolve, Chargeback:
		return kind, nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", s)
}

// Transaction is one typed record from the input stream.
type Transaction struct {
	Kind     TransactionKind  `json:"type"`
	ClientID uint16           `json:"client"`
	TxID     uint32           `json:"tx"`
	Amount   *decimal.Decimal `json:"amount,omitempty"` // nil for dispute/resolve/chargeback
}

// JournalEntry is the durable record of an accepted deposit, kept so that
// later dispute, resolve, and chargeback records can reference it by TxID.
// Entries are created exactly once and never deleted.
type JournalEntry struct {
	ClientID uint16
	TxID     uint32
	Amount   decimal.Decimal
	Disputed bool
	// ChargedBack marks the entry's terminal state. A charged-back entry can
	// never be disputed again, even though Disputed is cleared.
	ChargedBack bool
}
