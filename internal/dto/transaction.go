package dto

import (
	"time"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
)

// TransactionResponse is the API representation of a ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	DocumentID    *string                `json:"documentID,omitempty"`
	Amount        int64                  `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Description   string                 `json:"description"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponses converts a slice of domain Transactions
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = TransactionResponse{
			TransactionID: t.TransactionID,
			DocumentID:    t.DocumentID,
			Amount:        t.Amount,
			Type:          t.Type,
			Description:   t.Description,
			CreatedAt:     t.CreatedAt,
		}
	}
	return out
}
