package repositories

import (
	"context"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
)

// LedgerSettler defines the settlement operations of the points ledger.
// Each method executes as one persistence transaction: every balance update,
// ledger append, counter increment and status change it performs commits
// together or not at all.
type LedgerSettler interface {
	// SettlePurchase atomically settles the purchase of a document by a buyer:
	// it locks the document, the participating users and the stats singleton,
	// verifies status, entitlement and balance inside the lock, applies the
	// fee split, appends the ledger entries, increments the read counter and
	// pays any milestone bonus due. Returns apperrors.ErrDuplicate when the
	// buyer already owns the document.
	SettlePurchase(ctx context.Context, buyerID, documentID string) (*domain.PurchaseReceipt, error)

	// SettleApproval atomically approves a pending document and pays the
	// moderation reward from the fee pool or, when the pool cannot cover it,
	// from minted supply.
	SettleApproval(ctx context.Context, documentID, moderatorID string) (*domain.ApprovalReceipt, error)

	// SettleRejection atomically rejects a pending document. No ledger impact.
	SettleRejection(ctx context.Context, documentID, moderatorID string) error
}

// LedgerReader defines read operations over the ledger aggregates.
type LedgerReader interface {
	// GetSystemStats retrieves the stats singleton.
	GetSystemStats(ctx context.Context) (*domain.SystemStats, error)

	// ListTransactionsByUser retrieves a user's ledger entries, newest first.
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// LedgerRepositoryFacade combines the settlement and read interfaces.
type LedgerRepositoryFacade interface {
	LedgerSettler
	LedgerReader
}
