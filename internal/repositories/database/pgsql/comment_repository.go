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

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(pool *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCommentRepository implements portsrepo.CommentRepositoryFacade
var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	query := `
		INSERT INTO comments (comment_id, document_id, user_id, content, comment_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CommentID,
		m.DocumentID,
		m.UserID,
		m.Content,
		m.Type,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert comment "+m.CommentID, err)
	}
	return nil
}

func (r *PgxCommentRepository) ListCommentsByDocument(ctx context.Context, documentID string) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, document_id, user_id, content, comment_type, created_at
		FROM comments
		WHERE document_id = $1 AND comment_type = $2
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, documentID, string(domain.CommentPlain))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query comments for document "+documentID, err)
	}
	defer rows.Close()

	var ms []models.Comment
	for rows.Next() {
		var m models.Comment
		if err := rows.Scan(&m.CommentID, &m.DocumentID, &m.UserID, &m.Content, &m.Type, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan comment row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read comment rows", err)
	}
	return mapping.ToDomainCommentSlice(ms), nil
}

func (r *PgxCommentRepository) CountReactions(ctx context.Context, documentID string) (*domain.ReactionCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE comment_type = 'like'),
			COUNT(*) FILTER (WHERE comment_type = 'dislike'),
			COUNT(*) FILTER (WHERE comment_type = 'comment')
		FROM comments
		WHERE document_id = $1;
	`
	var counts domain.ReactionCounts
	err := r.Pool.QueryRow(ctx, query, documentID).Scan(&counts.Likes, &counts.Dislikes, &counts.Comments)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count reactions for document "+documentID, err)
	}
	return &counts, nil
}

func (r *PgxCommentRepository) HasReaction(ctx context.Context, userID, documentID string, kind domain.CommentType) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM comments WHERE user_id = $1 AND document_id = $2 AND comment_type = $3);`
	err := r.Pool.QueryRow(ctx, query, userID, documentID, string(kind)).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check reaction", err)
	}
	return exists, nil
}

func (r *PgxCommentRepository) CountLikesForAuthor(ctx context.Context, authorID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM comments c
		JOIN documents d ON d.document_id = c.document_id
		WHERE d.author_id = $1 AND c.comment_type = 'like';
	`
	var count int64
	err := r.Pool.QueryRow(ctx, query, authorID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count likes for author "+authorID, err)
	}
	return count, nil
}
