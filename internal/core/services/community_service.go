package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/middleware"
)

// demandKeywords are the markers that turn a community post into a demand.
// Matching is case-insensitive substring search.
var demandKeywords = []string{"wanted", "looking for"}

// recentPostsLimit caps the community feed.
const recentPostsLimit = 10

// communityService provides community feed operations.
type communityService struct {
	postRepo portsrepo.PostRepositoryFacade
	userRepo portsrepo.UserRepositoryFacade
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(postRepo portsrepo.PostRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.CommunitySvcFacade {
	return &communityService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

var _ portssvc.CommunitySvcFacade = (*communityService)(nil)

// CreatePost records a community post. When the content matches a demand
// keyword a default service demand is created in the same unit of work, with
// the poster's username as the contact.
func (s *communityService) CreatePost(ctx context.Context, req dto.CreatePostRequest, userID string) (*domain.CommunityPost, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	post := domain.CommunityPost{
		PostID:    uuid.NewString(),
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: now,
	}

	var demand *domain.Demand
	if containsDemandKeyword(req.Content) {
		user, err := s.userRepo.FindUserByID(ctx, userID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load poster: %w", err)
		}
		demand = &domain.Demand{
			DemandID:       uuid.NewString(),
			Title:          fmt.Sprintf("Community demand %s", now.Format("150405")),
			Description:    req.Content,
			Type:           domain.DemandService,
			PointsRequired: domain.DefaultDemandPoints,
			Status:         domain.DemandActive,
			ContactInfo:    user.Username,
			UserID:         userID,
			CreatedAt:      now,
		}
	}

	if err := s.postRepo.SavePost(ctx, post, demand); err != nil {
		logger.Error("Failed to save community post", slog.String("error", err.Error()))
		return nil, false, fmt.Errorf("failed to save post: %w", err)
	}

	logger.Info("Community post created", slog.String("post_id", post.PostID), slog.Bool("demand_created", demand != nil))
	return &post, demand != nil, nil
}

// ListRecentPosts retrieves the latest posts for the feed.
func (s *communityService) ListRecentPosts(ctx context.Context) ([]domain.CommunityPost, error) {
	posts, err := s.postRepo.ListRecentPosts(ctx, recentPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func containsDemandKeyword(content string) bool {
	lowered := strings.ToLower(content)
	for _, kw := range demandKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
