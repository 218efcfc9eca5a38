package mapping

import (
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	"github.com/docmarket/docmarket_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		DocumentID:    d.DocumentID,
		Amount:        d.Amount,
		Type:          string(d.Type),
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		DocumentID:    m.DocumentID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToDomainSystemStats converts a model SystemStats to a domain SystemStats
func ToDomainSystemStats(m models.SystemStats) domain.SystemStats {
	return domain.SystemStats{
		TotalPointsCreated: m.TotalPointsCreated,
		TotalFeesCollected: m.TotalFeesCollected,
		TotalRewardsGiven:  m.TotalRewardsGiven,
	}
}
