package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/middleware"
	"github.com/docmarket/docmarket_backend/internal/utils/settlement"
)

// settlementService is the ledger and settlement engine. It owns every point
// balance mutation: purchase fee splits, milestone bonuses, approval rewards
// and the system statistics. The atomic application of a settlement lives in
// the ledger repository; this service enforces the preconditions that do not
// need row locks, shapes the results and keeps the read side.
type settlementService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
	docRepo    portsrepo.DocumentRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(ledgerRepo portsrepo.LedgerRepositoryFacade, docRepo portsrepo.DocumentRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.SettlementSvcFacade {
	return &settlementService{
		ledgerRepo: ledgerRepo,
		docRepo:    docRepo,
		userRepo:   userRepo,
	}
}

var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

// PurchaseDocument settles a purchase: the buyer pays the full price, the
// platform retains the fee, the author receives the remainder, the read
// counter advances and a milestone bonus is paid when due. The repository
// applies all of it in one transaction; a repeated purchase by the same buyer
// comes back as an already-owned receipt with no mutation.
func (s *settlementService) PurchaseDocument(ctx context.Context, buyerID, documentID string) (*domain.PurchaseReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	buyer, err := s.userRepo.FindUserByID(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load buyer %s: %w", buyerID, err)
	}

	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load document for purchase", slog.String("document_id", documentID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	// Cheap pre-checks outside the settlement transaction; the repository
	// re-verifies all of them under row locks before any write.
	if !doc.IsPurchasable() {
		logger.Warn("Purchase attempted on non-approved document", slog.String("document_id", documentID), slog.String("status", string(doc.Status)))
		return nil, fmt.Errorf("%w: document %s is %s", apperrors.ErrInvalidTransition, documentID, doc.Status)
	}
	if buyer.Points < doc.Price {
		return nil, fmt.Errorf("%w: need %d, have %d", apperrors.ErrInsufficientPoints, doc.Price, buyer.Points)
	}

	receipt, err := s.ledgerRepo.SettlePurchase(ctx, buyerID, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Info("Purchase skipped, buyer already owns document", slog.String("document_id", documentID))
			return &domain.PurchaseReceipt{DocumentID: documentID, AlreadyOwned: true}, nil
		}
		logger.Error("Purchase settlement failed", slog.String("document_id", documentID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Purchase settled",
		slog.String("document_id", documentID),
		slog.Int64("paid", receipt.PaidAmount),
		slog.Int64("fee", receipt.FeeAmount),
		slog.Int64("bonus", receipt.MilestoneBonus),
		slog.Int64("read_count", receipt.ReadCount),
	)
	return receipt, nil
}

// ApproveDocument approves a pending document and pays the moderation reward,
// drawn from the fee pool when it can cover the reward and minted otherwise.
// The pending check runs inside the settlement transaction so a document can
// never be approved, and its author paid, twice.
func (s *settlementService) ApproveDocument(ctx context.Context, documentID, moderatorID string) (*domain.ApprovalReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.ledgerRepo.SettleApproval(ctx, documentID, moderatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidTransition) {
			logger.Warn("Approval refused", slog.String("document_id", documentID), slog.String("error", err.Error()))
		} else {
			logger.Error("Approval settlement failed", slog.String("document_id", documentID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Document approved",
		slog.String("document_id", documentID),
		slog.Int64("reward", receipt.RewardAmount),
		slog.String("source", string(receipt.Source)),
	)
	return receipt, nil
}

// RejectDocument rejects a pending document. No ledger impact.
func (s *settlementService) RejectDocument(ctx context.Context, documentID, moderatorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ledgerRepo.SettleRejection(ctx, documentID, moderatorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidTransition) {
			logger.Warn("Rejection refused", slog.String("document_id", documentID), slog.String("error", err.Error()))
		} else {
			logger.Error("Rejection failed", slog.String("document_id", documentID), slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Document rejected", slog.String("document_id", documentID))
	return nil
}

// GetSystemStats assembles the system-wide statistics view: the stats
// singleton, the points currently in circulation, headline counts and the
// dependency ratio.
func (s *settlementService) GetSystemStats(ctx context.Context) (*dto.SystemStatsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stats, err := s.ledgerRepo.GetSystemStats(ctx)
	if err != nil {
		logger.Error("Failed to load system stats", slog.String("error", err.Error()))
		return nil, err
	}

	circulation, err := s.userRepo.SumUserPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum user points: %w", err)
	}

	userCount, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	approvedCount, err := s.docRepo.CountDocumentsByStatus(ctx, domain.DocumentApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to count approved documents: %w", err)
	}

	ratio := settlement.DependencyRatio(stats.TotalPointsCreated, stats.TotalFeesCollected)

	return &dto.SystemStatsResponse{
		TotalPointsCreated:       stats.TotalPointsCreated,
		TotalFeesCollected:       stats.TotalFeesCollected,
		TotalRewardsGiven:        stats.TotalRewardsGiven,
		TotalPointsInCirculation: circulation,
		Users:                    userCount,
		ApprovedDocuments:        approvedCount,
		DependencyRatio:          ratio.StringFixed(2),
	}, nil
}

// ListUserTransactions retrieves a user's ledger history, newest first.
func (s *settlementService) ListUserTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.ledgerRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	return txns, nil
}
