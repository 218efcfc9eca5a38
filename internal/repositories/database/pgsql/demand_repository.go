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
	"github.com/jackc/pgx/v5/pgxpool"
)

const demandColumns = `demand_id, title, description, demand_type, points_required, status, contact_info, user_id, created_at`

type PgxDemandRepository struct {
	BaseRepository
}

func newPgxDemandRepository(pool *pgxpool.Pool) portsrepo.DemandRepositoryFacade {
	return &PgxDemandRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDemandRepository implements portsrepo.DemandRepositoryFacade
var _ portsrepo.DemandRepositoryFacade = (*PgxDemandRepository)(nil)

func scanDemand(row pgx.Row) (models.Demand, error) {
	var m models.Demand
	err := row.Scan(
		&m.DemandID,
		&m.Title,
		&m.Description,
		&m.Type,
		&m.PointsRequired,
		&m.Status,
		&m.ContactInfo,
		&m.UserID,
		&m.CreatedAt,
	)
	return m, err
}

func insertDemandTx(ctx context.Context, tx pgx.Tx, m models.Demand) error {
	query := `
		INSERT INTO demands (` + demandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		m.DemandID,
		m.Title,
		m.Description,
		m.Type,
		m.PointsRequired,
		m.Status,
		m.ContactInfo,
		m.UserID,
		m.CreatedAt,
	)
	return err
}

func (r *PgxDemandRepository) SaveDemand(ctx context.Context, demand domain.Demand) error {
	m := mapping.ToModelDemand(demand)
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertDemandTx(ctx, tx, m); err != nil {
		return apperrors.NewAppError(500, "failed to insert demand "+m.DemandID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxDemandRepository) FindDemandByID(ctx context.Context, demandID string) (*domain.Demand, error) {
	query := `SELECT ` + demandColumns + ` FROM demands WHERE demand_id = $1;`
	m, err := scanDemand(r.Pool.QueryRow(ctx, query, demandID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: demand %s not found", apperrors.ErrNotFound, demandID)
		}
		return nil, apperrors.NewAppError(500, "failed to query demand "+demandID, err)
	}
	demand := mapping.ToDomainDemand(m)
	return &demand, nil
}

func (r *PgxDemandRepository) ListActiveDemands(ctx context.Context, limit int) ([]domain.Demand, error) {
	query := `SELECT ` + demandColumns + ` FROM demands WHERE status = $1 ORDER BY created_at DESC`
	args := []any{string(domain.DemandActive)}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active demands", err)
	}
	defer rows.Close()

	var ms []models.Demand
	for rows.Next() {
		m, err := scanDemand(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan demand row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read demand rows", err)
	}
	return mapping.ToDomainDemandSlice(ms), nil
}

func (r *PgxDemandRepository) CountActiveDemandsByType(ctx context.Context, demandType domain.DemandType) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM demands WHERE status = $1 AND demand_type = $2;`
	err := r.Pool.QueryRow(ctx, query, string(domain.DemandActive), string(demandType)).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count active demands by type", err)
	}
	return count, nil
}
