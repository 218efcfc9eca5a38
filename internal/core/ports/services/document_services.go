package services

import (
	"context"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
	"github.com/docmarket/docmarket_backend/internal/dto"
)

// DocumentReaderSvc defines read operations for documents
type DocumentReaderSvc interface {
	// GetDocument retrieves a document with content gated on the requesting
	// user's entitlement or authorship.
	GetDocument(ctx context.Context, documentID string, requestingUserID string) (*dto.DocumentDetailResponse, error)

	// ListApproved retrieves all approved documents.
	ListApproved(ctx context.Context) ([]domain.Document, error)

	// ListPlatformDocuments retrieves approved documents excluding the
	// requesting user's own.
	ListPlatformDocuments(ctx context.Context, requestingUserID string) ([]domain.Document, error)

	// ListPending retrieves the moderation queue.
	ListPending(ctx context.Context) ([]domain.Document, error)

	// ListByAuthor retrieves all documents authored by a user.
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Document, error)
}

// DocumentWriterSvc defines write operations for documents
type DocumentWriterSvc interface {
	// SubmitDocument creates a pending document after applying the price
	// policy (permissive coercion, then minimum-price validation).
	SubmitDocument(ctx context.Context, req dto.SubmitDocumentRequest, authorID string) (*domain.Document, error)
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
