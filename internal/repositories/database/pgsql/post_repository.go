package pgsql

import (
	"context"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	"github.com/docmarket/docmarket_backend/internal/models"
	"github.com/docmarket/docmarket_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPostRepository struct {
	BaseRepository
}

func newPgxPostRepository(pool *pgxpool.Pool) portsrepo.PostRepositoryFacade {
	return &PgxPostRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPostRepository implements portsrepo.PostRepositoryFacade
var _ portsrepo.PostRepositoryFacade = (*PgxPostRepository)(nil)

// SavePost inserts the post and, when the post triggered a demand, the demand
// row in the same database transaction.
func (r *PgxPostRepository) SavePost(ctx context.Context, post domain.CommunityPost, demand *domain.Demand) error {
	m := mapping.ToModelCommunityPost(post)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO community_posts (post_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, query, m.PostID, m.UserID, m.Content, m.CreatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to insert community post "+m.PostID, err)
	}

	if demand != nil {
		if err := insertDemandTx(ctx, tx, mapping.ToModelDemand(*demand)); err != nil {
			return apperrors.NewAppError(500, "failed to insert demand for post "+m.PostID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPostRepository) ListRecentPosts(ctx context.Context, limit int) ([]domain.CommunityPost, error) {
	query := `
		SELECT post_id, user_id, content, created_at
		FROM community_posts
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent posts", err)
	}
	defer rows.Close()

	var ms []models.CommunityPost
	for rows.Next() {
		var m models.CommunityPost
		if err := rows.Scan(&m.PostID, &m.UserID, &m.Content, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan community post row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read community post rows", err)
	}
	return mapping.ToDomainCommunityPostSlice(ms), nil
}
