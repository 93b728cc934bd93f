package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tvance/txengine/internal/core/domain"
)

// SubmitTransactionRequest defines one transaction record submitted over
// HTTP. Field names mirror the CSV column layout.
type SubmitTransactionRequest struct {
	Kind     string           `json:"type" binding:"required,txkind"`
	ClientID uint16           `json:"client"`
	TxID     uint32           `json:"tx"`
	Amount   *decimal.Decimal `json:"amount"` // Optional: absent for dispute/resolve/chargeback
}

// ToDomain converts the request into a domain transaction. Kind is assumed
// validated by the txkind binding rule.
func (r SubmitTransactionRequest) ToDomain() domain.Transaction {
	kind, _ := domain.ParseTransactionKind(r.Kind)
	return domain.Transaction{
		Kind:     kind,
		ClientID: r.ClientID,
		TxID:     r.TxID,
		Amount:   r.Amount,
	}
}
