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

const documentColumns = `document_id, title, content, price, status, author_id, read_count, created_at, created_by, last_updated_at, last_updated_by`

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryFacade
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID,
		&m.Title,
		&m.Content,
		&m.Price,
		&m.Status,
		&m.AuthorID,
		&m.ReadCount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectDocuments(rows pgx.Rows) ([]models.Document, error) {
	defer rows.Close()
	var ms []models.Document
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, rows.Err()
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	m := mapping.ToModelDocument(document)
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID,
		m.Title,
		m.Content,
		m.Price,
		m.Status,
		m.AuthorID,
		m.ReadCount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert document "+m.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: document %s not found", apperrors.ErrNotFound, documentID)
		}
		return nil, apperrors.NewAppError(500, "failed to query document "+documentID, err)
	}
	doc := mapping.ToDomainDocument(m)
	return &doc, nil
}

func (r *PgxDocumentRepository) ListDocumentsByStatus(ctx context.Context, status domain.DocumentStatus) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE status = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query documents by status", err)
	}
	ms, err := collectDocuments(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan documents by status", err)
	}
	return mapping.ToDomainDocumentSlice(ms), nil
}

func (r *PgxDocumentRepository) ListApprovedExcludingAuthor(ctx context.Context, authorID string) ([]domain.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE status = $1 AND author_id <> $2
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.DocumentApproved), authorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query approved documents", err)
	}
	ms, err := collectDocuments(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan approved documents", err)
	}
	return mapping.ToDomainDocumentSlice(ms), nil
}

func (r *PgxDocumentRepository) ListDocumentsByAuthor(ctx context.Context, authorID string) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE author_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query documents by author", err)
	}
	ms, err := collectDocuments(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan documents by author", err)
	}
	return mapping.ToDomainDocumentSlice(ms), nil
}

func (r *PgxDocumentRepository) CountDocumentsByStatus(ctx context.Context, status domain.DocumentStatus) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE status = $1;`, string(status)).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count documents by status", err)
	}
	return count, nil
}

func (r *PgxDocumentRepository) HasEntitlement(ctx context.Context, userID, documentID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM document_entitlements WHERE user_id = $1 AND document_id = $2);`
	err := r.Pool.QueryRow(ctx, query, userID, documentID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check entitlement", err)
	}
	return exists, nil
}
