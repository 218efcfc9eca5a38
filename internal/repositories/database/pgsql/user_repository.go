package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	"github.com/docmarket/docmarket_backend/internal/models"
	"github.com/docmarket/docmarket_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser inserts the user row and their welcome grant ledger entry in a
// single database transaction.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User, welcome domain.Transaction) error {
	modelUser := mapping.ToModelUser(user)
	modelTxn := mapping.ToModelTransaction(welcome)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	userQuery := `
		INSERT INTO users (user_id, username, password, points, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, userQuery,
		modelUser.UserID,
		modelUser.Username,
		modelUser.Password,
		modelUser.Points,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: username %s already taken", apperrors.ErrDuplicate, modelUser.Username)
		}
		return apperrors.NewAppError(500, "failed to insert user "+modelUser.UserID, err)
	}

	txnQuery := `
		INSERT INTO transactions (transaction_id, user_id, document_id, amount, transaction_type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, txnQuery,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.DocumentID,
		modelTxn.Amount,
		modelTxn.Type,
		modelTxn.Description,
		modelTxn.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert welcome transaction for user "+modelUser.UserID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password, points, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE user_id = $1;
	`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Username,
		&m.Password,
		&m.Points,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s not found", apperrors.ErrNotFound, userID)
		}
		return nil, apperrors.NewAppError(500, "failed to query user "+userID, err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password, points, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE username = $1;
	`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&m.UserID,
		&m.Username,
		&m.Password,
		&m.Points,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: username %s not found", apperrors.ErrNotFound, username)
		}
		return nil, apperrors.NewAppError(500, "failed to query user by username", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count users", err)
	}
	return count, nil
}

func (r *PgxUserRepository) SumUserPoints(ctx context.Context) (int64, error) {
	var total int64
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(points), 0) FROM users;`).Scan(&total)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to sum user points", err)
	}
	return total, nil
}
