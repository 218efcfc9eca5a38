package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	"github.com/docmarket/docmarket_backend/internal/models"
	"github.com/docmarket/docmarket_backend/internal/utils/mapping"
	"github.com/docmarket/docmarket_backend/internal/utils/settlement"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the repository that owns the settlement
// transactions over documents, users, the transactions ledger and the stats
// singleton.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// lockedDocument is the subset of document columns the settlement paths lock
// and mutate.
type lockedDocument struct {
	DocumentID string
	Price      int64
	Status     string
	AuthorID   string
	ReadCount  int64
}

// lockDocumentForUpdate acquires a row lock on the document. All settlement
// paths take this lock first so concurrent settlements of the same document
// serialize here.
func (r *PgxLedgerRepository) lockDocumentForUpdate(ctx context.Context, tx pgx.Tx, documentID string) (*lockedDocument, error) {
	query := `
		SELECT document_id, price, status, author_id, read_count
		FROM documents
		WHERE document_id = $1
		FOR UPDATE;
	`
	var doc lockedDocument
	err := tx.QueryRow(ctx, query, documentID).Scan(
		&doc.DocumentID,
		&doc.Price,
		&doc.Status,
		&doc.AuthorID,
		&doc.ReadCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: document %s not found", apperrors.ErrNotFound, documentID)
		}
		return nil, apperrors.NewAppError(500, "failed to lock document "+documentID, err)
	}
	return &doc, nil
}

// lockUsersForUpdate locks the given user rows in user_id order and returns
// their current balances. Ordering the lock acquisition keeps concurrent
// settlements touching overlapping users from deadlocking.
func (r *PgxLedgerRepository) lockUsersForUpdate(ctx context.Context, tx pgx.Tx, userIDs []string) (map[string]int64, error) {
	query := `
		SELECT user_id, points
		FROM users
		WHERE user_id = ANY($1)
		ORDER BY user_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, userIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock users for update", err)
	}
	defer rows.Close()

	balances := make(map[string]int64)
	for rows.Next() {
		var userID string
		var points int64
		if err := rows.Scan(&userID, &points); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked user row", err)
		}
		balances[userID] = points
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read locked user rows", err)
	}
	for _, id := range userIDs {
		if _, ok := balances[id]; !ok {
			return nil, fmt.Errorf("%w: user %s not found", apperrors.ErrNotFound, id)
		}
	}
	return balances, nil
}

// lockStatsForUpdate locks the stats singleton and returns its current values.
// Locked last, after documents and users.
func (r *PgxLedgerRepository) lockStatsForUpdate(ctx context.Context, tx pgx.Tx) (*models.SystemStats, error) {
	query := `
		SELECT total_points_created, total_fees_collected, total_rewards_given
		FROM system_stats
		WHERE stats_id = 1
		FOR UPDATE;
	`
	var m models.SystemStats
	err := tx.QueryRow(ctx, query).Scan(&m.TotalPointsCreated, &m.TotalFeesCollected, &m.TotalRewardsGiven)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock system stats", err)
	}
	return &m, nil
}

func (r *PgxLedgerRepository) adjustUserPoints(ctx context.Context, tx pgx.Tx, userID string, delta int64, now time.Time, actorID string) error {
	query := `
		UPDATE users
		SET points = points + $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1;
	`
	if _, err := tx.Exec(ctx, query, userID, delta, now, actorID); err != nil {
		return apperrors.NewAppError(500, "failed to adjust points for user "+userID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) insertTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, user_id, document_id, amount, transaction_type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.DocumentID,
		m.Amount,
		m.Type,
		m.Description,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

// SettlePurchase settles a document purchase in one database transaction:
// fee split, ledger entries, entitlement, read counter and any milestone
// bonus commit together or not at all.
func (r *PgxLedgerRepository) SettlePurchase(ctx context.Context, buyerID, documentID string) (*domain.PurchaseReceipt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	doc, err := r.lockDocumentForUpdate(ctx, tx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != string(domain.DocumentApproved) {
		return nil, fmt.Errorf("%w: document %s is %s, only approved documents can be purchased", apperrors.ErrInvalidTransition, documentID, doc.Status)
	}

	// Re-check ownership under the document lock so two concurrent purchases
	// of the same document by the same buyer cannot both settle.
	var owned bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM document_entitlements WHERE user_id = $1 AND document_id = $2);`,
		buyerID, documentID,
	).Scan(&owned)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to check entitlement", err)
	}
	if owned {
		return nil, fmt.Errorf("%w: user %s already owns document %s", apperrors.ErrDuplicate, buyerID, documentID)
	}

	userIDs := []string{buyerID}
	if doc.AuthorID != buyerID {
		userIDs = append(userIDs, doc.AuthorID)
	}
	balances, err := r.lockUsersForUpdate(ctx, tx, userIDs)
	if err != nil {
		return nil, err
	}
	if balances[buyerID] < doc.Price {
		return nil, fmt.Errorf("%w: balance %d is below price %d", apperrors.ErrInsufficientPoints, balances[buyerID], doc.Price)
	}

	stats, err := r.lockStatsForUpdate(ctx, tx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fee := settlement.PlatformFee(doc.Price)
	earnings := settlement.AuthorEarnings(doc.Price)

	if doc.AuthorID == buyerID {
		// Author buying their own document nets out to just the fee.
		if err := r.adjustUserPoints(ctx, tx, buyerID, earnings-doc.Price, now, buyerID); err != nil {
			return nil, err
		}
	} else {
		if err := r.adjustUserPoints(ctx, tx, buyerID, -doc.Price, now, buyerID); err != nil {
			return nil, err
		}
		if err := r.adjustUserPoints(ctx, tx, doc.AuthorID, earnings, now, buyerID); err != nil {
			return nil, err
		}
	}

	feeTxn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        buyerID,
		DocumentID:    &doc.DocumentID,
		Amount:        -fee,
		Type:          domain.TxFee,
		Description:   fmt.Sprintf("platform fee for purchase of document %s", doc.DocumentID),
		CreatedAt:     now,
	}
	readTxn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        doc.AuthorID,
		DocumentID:    &doc.DocumentID,
		Amount:        earnings,
		Type:          domain.TxRead,
		Description:   fmt.Sprintf("earnings from purchase of document %s", doc.DocumentID),
		CreatedAt:     now,
	}
	if err := r.insertTransaction(ctx, tx, feeTxn); err != nil {
		return nil, err
	}
	if err := r.insertTransaction(ctx, tx, readTxn); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO document_entitlements (user_id, document_id, created_at) VALUES ($1, $2, $3);`,
		buyerID, documentID, now,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert entitlement", err)
	}

	newReadCount := doc.ReadCount + 1
	_, err = tx.Exec(ctx,
		`UPDATE documents SET read_count = $2, last_updated_at = $3, last_updated_by = $4 WHERE document_id = $1;`,
		documentID, newReadCount, now, buyerID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to increment read count", err)
	}

	newFees := stats.TotalFeesCollected + fee
	newRewards := stats.TotalRewardsGiven

	var bonus int64
	if settlement.MilestoneDue(newReadCount) {
		bonus = settlement.MilestoneBonus(newReadCount)
		newRewards += bonus
		if err := r.adjustUserPoints(ctx, tx, doc.AuthorID, bonus, now, buyerID); err != nil {
			return nil, err
		}
		bonusTxn := domain.Transaction{
			TransactionID: uuid.NewString(),
			UserID:        doc.AuthorID,
			DocumentID:    &doc.DocumentID,
			Amount:        bonus,
			Type:          domain.TxReward,
			Description:   fmt.Sprintf("milestone bonus at %d reads of document %s", newReadCount, doc.DocumentID),
			CreatedAt:     now,
		}
		if err := r.insertTransaction(ctx, tx, bonusTxn); err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE system_stats SET total_fees_collected = $1, total_rewards_given = $2 WHERE stats_id = 1;`,
		newFees, newRewards,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update system stats", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.PurchaseReceipt{
		DocumentID:     documentID,
		PaidAmount:     doc.Price,
		FeeAmount:      fee,
		AuthorEarnings: earnings,
		MilestoneBonus: bonus,
		ReadCount:      newReadCount,
	}, nil
}

// SettleApproval approves a pending document and pays the moderation reward,
// drawing from the collected fee pool when it covers the reward and minting
// new supply otherwise.
func (r *PgxLedgerRepository) SettleApproval(ctx context.Context, documentID, moderatorID string) (*domain.ApprovalReceipt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	doc, err := r.lockDocumentForUpdate(ctx, tx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != string(domain.DocumentPending) {
		return nil, fmt.Errorf("%w: document %s is %s, only pending documents can be approved", apperrors.ErrInvalidTransition, documentID, doc.Status)
	}

	if _, err := r.lockUsersForUpdate(ctx, tx, []string{doc.AuthorID}); err != nil {
		return nil, err
	}
	stats, err := r.lockStatsForUpdate(ctx, tx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reward, source := settlement.ApprovalReward(stats.TotalFeesCollected)

	newCreated := stats.TotalPointsCreated
	newFees := stats.TotalFeesCollected
	newRewards := stats.TotalRewardsGiven
	if source == domain.SourceMinted {
		newCreated += reward
	} else {
		newFees -= reward
		newRewards += reward
	}

	if err := r.adjustUserPoints(ctx, tx, doc.AuthorID, reward, now, moderatorID); err != nil {
		return nil, err
	}
	rewardTxn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        doc.AuthorID,
		DocumentID:    &doc.DocumentID,
		Amount:        reward,
		Type:          domain.TxReward,
		Description:   fmt.Sprintf("approval reward (%s) for document %s", source, doc.DocumentID),
		CreatedAt:     now,
	}
	if err := r.insertTransaction(ctx, tx, rewardTxn); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE documents SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE document_id = $1;`,
		documentID, string(domain.DocumentApproved), now, moderatorID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark document approved", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE system_stats SET total_points_created = $1, total_fees_collected = $2, total_rewards_given = $3 WHERE stats_id = 1;`,
		newCreated, newFees, newRewards,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update system stats", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.ApprovalReceipt{
		DocumentID:   documentID,
		RewardAmount: reward,
		Source:       source,
	}, nil
}

// SettleRejection rejects a pending document. Status is the only mutation; no
// ledger entries or balance changes are made.
func (r *PgxLedgerRepository) SettleRejection(ctx context.Context, documentID, moderatorID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	doc, err := r.lockDocumentForUpdate(ctx, tx, documentID)
	if err != nil {
		return err
	}
	if doc.Status != string(domain.DocumentPending) {
		return fmt.Errorf("%w: document %s is %s, only pending documents can be rejected", apperrors.ErrInvalidTransition, documentID, doc.Status)
	}

	_, err = tx.Exec(ctx,
		`UPDATE documents SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE document_id = $1;`,
		documentID, string(domain.DocumentRejected), time.Now().UTC(), moderatorID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark document rejected", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLedgerRepository) GetSystemStats(ctx context.Context) (*domain.SystemStats, error) {
	query := `
		SELECT total_points_created, total_fees_collected, total_rewards_given
		FROM system_stats
		WHERE stats_id = 1;
	`
	var m models.SystemStats
	err := r.Pool.QueryRow(ctx, query).Scan(&m.TotalPointsCreated, &m.TotalFeesCollected, &m.TotalRewardsGiven)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query system stats", err)
	}
	stats := mapping.ToDomainSystemStats(m)
	return &stats, nil
}

func (r *PgxLedgerRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, document_id, amount, transaction_type, description, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for user "+userID, err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.DocumentID,
			&m.Amount,
			&m.Type,
			&m.Description,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}
