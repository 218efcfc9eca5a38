package repositories

import (
	"context"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
)

// CommentRepositoryFacade defines operations for comments and reactions.
type CommentRepositoryFacade interface {
	// SaveComment persists a new comment or reaction.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// ListCommentsByDocument retrieves all comments for a document, newest first.
	ListCommentsByDocument(ctx context.Context, documentID string) ([]domain.Comment, error)

	// CountReactions aggregates like/dislike/comment counts for a document.
	CountReactions(ctx context.Context, documentID string) (*domain.ReactionCounts, error)

	// HasReaction reports whether the user already reacted to the document
	// with the given kind.
	HasReaction(ctx context.Context, userID, documentID string, kind domain.CommentType) (bool, error)

	// CountLikesForAuthor returns the total likes across all of an author's
	// documents.
	CountLikesForAuthor(ctx context.Context, authorID string) (int64, error)
}

// DemandRepositoryFacade defines operations for demand want-ads.
type DemandRepositoryFacade interface {
	// SaveDemand persists a new demand.
	SaveDemand(ctx context.Context, demand domain.Demand) error

	// FindDemandByID retrieves a specific demand.
	FindDemandByID(ctx context.Context, demandID string) (*domain.Demand, error)

	// ListActiveDemands retrieves active demands, newest first, optionally
	// capped at limit (0 means no cap).
	ListActiveDemands(ctx context.Context, limit int) ([]domain.Demand, error)

	// CountActiveDemandsByType returns the number of active demands of a kind.
	CountActiveDemandsByType(ctx context.Context, demandType domain.DemandType) (int64, error)
}

// PostRepositoryFacade defines operations for community posts.
type PostRepositoryFacade interface {
	// SavePost persists a new community post. When demand is non-nil it is
	// persisted in the same transaction.
	SavePost(ctx context.Context, post domain.CommunityPost, demand *domain.Demand) error

	// ListRecentPosts retrieves the most recent posts, newest first.
	ListRecentPosts(ctx context.Context, limit int) ([]domain.CommunityPost, error)
}
