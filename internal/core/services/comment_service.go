package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/middleware"
)

var (
	ErrCommentContentMissing = fmt.Errorf("%w: comment content is required", apperrors.ErrValidation)
)

// commentService provides comment and reaction operations on documents.
type commentService struct {
	commentRepo portsrepo.CommentRepositoryFacade
	docRepo     portsrepo.DocumentRepositoryFacade
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, docRepo portsrepo.DocumentRepositoryFacade) portssvc.CommentSvcFacade {
	return &commentService{
		commentRepo: commentRepo,
		docRepo:     docRepo,
	}
}

var _ portssvc.CommentSvcFacade = (*commentService)(nil)

// AddComment records a comment or reaction. Plain comments require content;
// likes and dislikes carry none and are deduplicated per user per document.
func (s *commentService) AddComment(ctx context.Context, documentID string, req dto.AddCommentRequest, userID string) (*domain.Comment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := req.Type
	if kind == "" {
		kind = domain.CommentPlain
	}

	if kind == domain.CommentPlain && strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w", ErrCommentContentMissing)
	}

	if _, err := s.docRepo.FindDocumentByID(ctx, documentID); err != nil {
		return nil, err
	}

	if kind != domain.CommentPlain {
		exists, err := s.commentRepo.HasReaction(ctx, userID, documentID, kind)
		if err != nil {
			logger.Error("Failed to check existing reaction", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to check reaction: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: already %sd", apperrors.ErrDuplicate, kind)
		}
	}

	comment := domain.Comment{
		CommentID:  uuid.NewString(),
		DocumentID: documentID,
		UserID:     userID,
		Content:    req.Content,
		Type:       kind,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		logger.Error("Failed to save comment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	logger.Info("Comment added", slog.String("document_id", documentID), slog.String("type", string(kind)))
	return &comment, nil
}

// ListComments retrieves a document's comments, newest first.
func (s *commentService) ListComments(ctx context.Context, documentID string) ([]domain.Comment, error) {
	comments, err := s.commentRepo.ListCommentsByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for document %s: %w", documentID, err)
	}
	return comments, nil
}
