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
)

// userService provides registration, authentication and dashboard operations.
type userService struct {
	userRepo    portsrepo.UserRepositoryFacade
	docRepo     portsrepo.DocumentRepositoryFacade
	commentRepo portsrepo.CommentRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, docRepo portsrepo.DocumentRepositoryFacade, commentRepo portsrepo.CommentRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		docRepo:     docRepo,
		commentRepo: commentRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a new user with the welcome grant. The grant is
// recorded as a reward ledger entry in the same persistence transaction as
// the user row so the balance and the ledger never disagree.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check username availability", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, req.Username)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()

	user := domain.User{
		UserID:   userID,
		Username: req.Username,
		Password: req.Password,
		Points:   domain.WelcomePoints,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	welcome := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        domain.WelcomePoints,
		Type:          domain.TxReward,
		Description:   "welcome grant",
		CreatedAt:     now,
	}

	if err := s.userRepo.SaveUser(ctx, user, welcome); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User registered", slog.String("new_user_id", userID), slog.String("username", req.Username))
	return &user, nil
}

// AuthenticateUser checks a username/credential pair. The credential is an
// opaque string compared verbatim; hashing is out of scope here.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error for unknown user and wrong credential.
			return nil, apperrors.ErrForbidden
		}
		logger.Error("Failed to load user for authentication", slog.String("error", err.Error()))
		return nil, err
	}

	if user.Password != password {
		logger.Warn("Authentication failed", slog.String("username", username))
		return nil, apperrors.ErrForbidden
	}

	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

// GetDashboard assembles a user's dashboard: their documents, cumulative
// reads across them, like count and current balance.
func (s *userService) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	docs, err := s.docRepo.ListDocumentsByAuthor(ctx, userID)
	if err != nil {
		logger.Error("Failed to list user documents", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var totalReads int64
	for _, doc := range docs {
		totalReads += doc.ReadCount
	}

	totalLikes, err := s.commentRepo.CountLikesForAuthor(ctx, userID)
	if err != nil {
		logger.Error("Failed to count likes", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &dto.DashboardResponse{
		User:       dto.ToUserResponse(user),
		Documents:  dto.ToDocumentResponses(docs),
		TotalReads: totalReads,
		TotalLikes: totalLikes,
	}, nil
}
