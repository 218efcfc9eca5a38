package services

import (
	"context"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
	"github.com/docmarket/docmarket_backend/internal/dto"
)

// CommentSvcFacade defines operations for comments and reactions.
type CommentSvcFacade interface {
	// AddComment records a comment or reaction on a document.
	AddComment(ctx context.Context, documentID string, req dto.AddCommentRequest, userID string) (*domain.Comment, error)

	// ListComments retrieves a document's comments, newest first.
	ListComments(ctx context.Context, documentID string) ([]domain.Comment, error)
}

// DemandSvcFacade defines operations for demand want-ads.
type DemandSvcFacade interface {
	// CreateDemand creates a new demand after applying the points policy.
	CreateDemand(ctx context.Context, req dto.CreateDemandRequest, userID string) (*domain.Demand, error)

	// GetDemand retrieves a specific demand.
	GetDemand(ctx context.Context, demandID string) (*domain.Demand, error)

	// ListActiveDemands lists active demands with per-type counts.
	ListActiveDemands(ctx context.Context) (*dto.DemandListResponse, error)
}

// CommunitySvcFacade defines operations for the community feed.
type CommunitySvcFacade interface {
	// CreatePost records a community post, spawning a demand when the content
	// matches a demand keyword. Returns the post and whether a demand was
	// created.
	CreatePost(ctx context.Context, req dto.CreatePostRequest, userID string) (*domain.CommunityPost, bool, error)

	// ListRecentPosts retrieves the latest posts for the feed.
	ListRecentPosts(ctx context.Context) ([]domain.CommunityPost, error)
}
