package domain

import "time"

// TransactionType classifies the business reason for a ledger entry.
type TransactionType string

const (
	// TxRead is income credited to an author for a purchased read.
	TxRead TransactionType = "read"
	// TxReward is a grant credited by the system (approval reward, milestone
	// bonus, welcome grant).
	TxReward TransactionType = "reward"
	// TxFee is the platform fee debited from a buyer into the fee pool.
	TxFee TransactionType = "fee"
)

// Transaction is an immutable, append-only ledger entry recording one atomic
// balance change attributable to one cause. Entries are never updated or
// deleted.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> User.userID
	DocumentID    *string         `json:"documentID,omitempty"`
	Amount        int64           `json:"amount"` // Signed
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Entitlement records that a user has purchased read access to a document.
// It is written in the same persistence transaction as the balance deduction
// so two concurrent purchases of the same document by one buyer cannot both
// commit.
type Entitlement struct {
	UserID     string    `json:"userID"`
	DocumentID string    `json:"documentID"`
	CreatedAt  time.Time `json:"createdAt"`
}
