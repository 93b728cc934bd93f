package dto

import (
	"github.com/tvance/txengine/internal/core/domain"
)

// AccountResponse defines the data returned for one account snapshot.
// Monetary columns are rendered with fixed 4-digit fractional precision.
type AccountResponse struct {
	ClientID  uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

// ToAccountResponse converts a domain snapshot to its response DTO.
func ToAccountResponse(snapshot domain.AccountSnapshot) AccountResponse {
	return AccountResponse{
		ClientID:  snapshot.ClientID,
		Available: snapshot.Available.StringFixed(4),
		Held:      snapshot.Held.StringFixed(4),
		Total:     snapshot.Total.StringFixed(4),
		Locked:    snapshot.Locked,
	}
}
