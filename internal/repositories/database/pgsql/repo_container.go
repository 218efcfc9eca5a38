package pgsql

import (
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	commentRepo := newPgxCommentRepository(dbPool)
	demandRepo := newPgxDemandRepository(dbPool)
	postRepo := newPgxPostRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:     userRepo,
		DocumentRepo: documentRepo,
		LedgerRepo:   ledgerRepo,
		CommentRepo:  commentRepo,
		DemandRepo:   demandRepo,
		PostRepo:     postRepo,
	}
}
