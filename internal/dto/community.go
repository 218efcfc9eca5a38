package dto

import (
	"time"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
)

// AddCommentRequest carries a new comment or reaction. Content is required
// only for plain comments; likes and dislikes carry none.
type AddCommentRequest struct {
	Type    domain.CommentType `json:"type" binding:"omitempty,oneof=comment like dislike"`
	Content string             `json:"content"`
}

// CommentResponse is the API representation of a comment.
type CommentResponse struct {
	CommentID  string             `json:"commentID"`
	DocumentID string             `json:"documentID"`
	UserID     string             `json:"userID"`
	Content    string             `json:"content"`
	Type       domain.CommentType `json:"type"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// ToCommentResponses converts a slice of domain Comments
func ToCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = CommentResponse{
			CommentID:  c.CommentID,
			DocumentID: c.DocumentID,
			UserID:     c.UserID,
			Content:    c.Content,
			Type:       c.Type,
			CreatedAt:  c.CreatedAt,
		}
	}
	return out
}

// CreateDemandRequest carries a new demand. Points arrives as the raw form
// string; non-numeric input is coerced to the default offer.
type CreateDemandRequest struct {
	Title       string            `json:"title" binding:"required,max=100"`
	Description string            `json:"description" binding:"required"`
	Type        domain.DemandType `json:"type" binding:"omitempty,oneof=service parts"`
	Points      string            `json:"points"`
	ContactInfo string            `json:"contactInfo" binding:"max=100"`
}

// DemandResponse is the API representation of a demand.
type DemandResponse struct {
	DemandID       string              `json:"demandID"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Type           domain.DemandType   `json:"type"`
	PointsRequired int64               `json:"pointsRequired"`
	Status         domain.DemandStatus `json:"status"`
	ContactInfo    string              `json:"contactInfo"`
	UserID         string              `json:"userID"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// ToDemandResponse converts a domain Demand to a DemandResponse
func ToDemandResponse(d *domain.Demand) DemandResponse {
	return DemandResponse{
		DemandID:       d.DemandID,
		Title:          d.Title,
		Description:    d.Description,
		Type:           d.Type,
		PointsRequired: d.PointsRequired,
		Status:         d.Status,
		ContactInfo:    d.ContactInfo,
		UserID:         d.UserID,
		CreatedAt:      d.CreatedAt,
	}
}

// DemandListResponse lists active demands with per-type counts.
type DemandListResponse struct {
	Demands        []DemandResponse `json:"demands"`
	ServiceDemands int64            `json:"serviceDemands"`
	PartsDemands   int64            `json:"partsDemands"`
}

// CreatePostRequest carries a new community post.
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostResponse is the API representation of a community post. DemandCreated
// is set when the post's content also spawned a demand.
type PostResponse struct {
	PostID        string    `json:"postID"`
	UserID        string    `json:"userID"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	DemandCreated bool      `json:"demandCreated,omitempty"`
}

// ToPostResponses converts a slice of domain CommunityPosts
func ToPostResponses(posts []domain.CommunityPost) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = PostResponse{
			PostID:    p.PostID,
			UserID:    p.UserID,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
		}
	}
	return out
}
