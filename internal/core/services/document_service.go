package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/middleware"
	"github.com/docmarket/docmarket_backend/internal/utils"
)

var (
	ErrPriceBelowMinimum = fmt.Errorf("%w: document price below minimum", apperrors.ErrValidation)
)

// documentService provides document submission and listing operations.
// Settlement (purchase/approval) lives in the settlement service.
type documentService struct {
	docRepo     portsrepo.DocumentRepositoryFacade
	commentRepo portsrepo.CommentRepositoryFacade
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(docRepo portsrepo.DocumentRepositoryFacade, commentRepo portsrepo.CommentRepositoryFacade) portssvc.DocumentSvcFacade {
	return &documentService{
		docRepo:     docRepo,
		commentRepo: commentRepo,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// SubmitDocument creates a pending document. The submitted price string is
// coerced permissively (non-numeric input falls back to the default price);
// the minimum-price rule is then enforced on the coerced value.
func (s *documentService) SubmitDocument(ctx context.Context, req dto.SubmitDocumentRequest, authorID string) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	price := utils.CoercePoints(req.Price, domain.DefaultDocumentPrice)
	if price < domain.MinDocumentPrice {
		return nil, fmt.Errorf("%w: %d is below the minimum of %d", ErrPriceBelowMinimum, price, domain.MinDocumentPrice)
	}

	now := time.Now().UTC()
	doc := domain.Document{
		DocumentID: uuid.NewString(),
		Title:      req.Title,
		Content:    req.Content,
		Price:      price,
		Status:     domain.DocumentPending,
		AuthorID:   authorID,
		ReadCount:  0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     authorID,
			LastUpdatedAt: now,
			LastUpdatedBy: authorID,
		},
	}

	if err := s.docRepo.SaveDocument(ctx, doc); err != nil {
		logger.Error("Failed to save document", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	logger.Info("Document submitted", slog.String("document_id", doc.DocumentID), slog.Int64("price", price))
	return &doc, nil
}

// GetDocument retrieves a document. The body is included only when the
// requesting user authored the document or holds an entitlement for it;
// otherwise the caller gets the listing fields and the engagement counts.
func (s *documentService) GetDocument(ctx context.Context, documentID string, requestingUserID string) (*dto.DocumentDetailResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find document", slog.String("document_id", documentID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	owned := doc.AuthorID == requestingUserID
	if !owned {
		owned, err = s.docRepo.HasEntitlement(ctx, requestingUserID, documentID)
		if err != nil {
			logger.Error("Failed to check entitlement", slog.String("document_id", documentID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to check entitlement: %w", err)
		}
	}

	reactions, err := s.commentRepo.CountReactions(ctx, documentID)
	if err != nil {
		logger.Error("Failed to count reactions", slog.String("document_id", documentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}

	resp := &dto.DocumentDetailResponse{
		DocumentResponse: dto.ToDocumentResponse(doc),
		Owned:            owned,
		Reactions:        *reactions,
	}
	if owned {
		resp.Content = &doc.Content
	}
	return resp, nil
}

// ListApproved retrieves all approved documents, newest first.
func (s *documentService) ListApproved(ctx context.Context) ([]domain.Document, error) {
	return s.docRepo.ListDocumentsByStatus(ctx, domain.DocumentApproved)
}

// ListPlatformDocuments retrieves approved documents excluding the
// requesting user's own.
func (s *documentService) ListPlatformDocuments(ctx context.Context, requestingUserID string) ([]domain.Document, error) {
	return s.docRepo.ListApprovedExcludingAuthor(ctx, requestingUserID)
}

// ListPending retrieves the moderation queue.
func (s *documentService) ListPending(ctx context.Context) ([]domain.Document, error) {
	return s.docRepo.ListDocumentsByStatus(ctx, domain.DocumentPending)
}

// ListByAuthor retrieves all documents authored by a user.
func (s *documentService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Document, error) {
	return s.docRepo.ListDocumentsByAuthor(ctx, authorID)
}
