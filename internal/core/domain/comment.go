package domain

import "time"

// CommentType distinguishes written comments from one-click reactions.
type CommentType string

const (
	CommentPlain   CommentType = "comment"
	CommentLike    CommentType = "like"
	CommentDislike CommentType = "dislike"
)

// Comment is an engagement signal attached to a document. Likes and dislikes
// carry no content; at most one reaction of each kind per user per document.
type Comment struct {
	CommentID  string      `json:"commentID"` // Primary Key (UUID)
	DocumentID string      `json:"documentID"`
	UserID     string      `json:"userID"`
	Content    string      `json:"content"`
	Type       CommentType `json:"type"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ReactionCounts aggregates the engagement signals for one document.
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	Comments int64 `json:"comments"`
}
