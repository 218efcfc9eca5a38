package models

import "time"

// Transaction represents a row in the append-only transactions table.
type Transaction struct {
	TransactionID string    `db:"transaction_id"`
	UserID        string    `db:"user_id"`
	DocumentID    *string   `db:"document_id"` // Nullable
	Amount        int64     `db:"amount"`      // Signed
	Type          string    `db:"transaction_type"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}

// Entitlement represents a row in the document_entitlements table, keyed by
// (user_id, document_id).
type Entitlement struct {
	UserID     string    `db:"user_id"`
	DocumentID string    `db:"document_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// SystemStats represents the singleton row in the system_stats table.
type SystemStats struct {
	TotalPointsCreated int64 `db:"total_points_created"`
	TotalFeesCollected int64 `db:"total_fees_collected"`
	TotalRewardsGiven  int64 `db:"total_rewards_given"`
}
