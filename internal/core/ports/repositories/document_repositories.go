package repositories

import (
	"context"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	// FindDocumentByID retrieves a specific document by its unique identifier.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocumentsByStatus retrieves documents in the given moderation state,
	// newest first.
	ListDocumentsByStatus(ctx context.Context, status domain.DocumentStatus) ([]domain.Document, error)

	// ListApprovedExcludingAuthor retrieves approved documents not authored by
	// the given user.
	ListApprovedExcludingAuthor(ctx context.Context, authorID string) ([]domain.Document, error)

	// ListDocumentsByAuthor retrieves all documents authored by the given user.
	ListDocumentsByAuthor(ctx context.Context, authorID string) ([]domain.Document, error)

	// CountDocumentsByStatus returns the number of documents in the given state.
	CountDocumentsByStatus(ctx context.Context, status domain.DocumentStatus) (int64, error)

	// HasEntitlement reports whether the user has purchased read access to the
	// document.
	HasEntitlement(ctx context.Context, userID, documentID string) (bool, error)
}

// DocumentWriter defines write operations for document data
type DocumentWriter interface {
	// SaveDocument persists a new document.
	SaveDocument(ctx context.Context, document domain.Document) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
