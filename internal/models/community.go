package models

import "time"

// Comment represents a row in the comments table.
type Comment struct {
	CommentID  string    `db:"comment_id"`
	DocumentID string    `db:"document_id"`
	UserID     string    `db:"user_id"`
	Content    string    `db:"content"`
	Type       string    `db:"comment_type"` // comment/like/dislike
	CreatedAt  time.Time `db:"created_at"`
}

// Demand represents a row in the demands table.
type Demand struct {
	DemandID       string    `db:"demand_id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Type           string    `db:"demand_type"` // service/parts
	PointsRequired int64     `db:"points_required"`
	Status         string    `db:"status"` // active/completed
	ContactInfo    string    `db:"contact_info"`
	UserID         string    `db:"user_id"`
	CreatedAt      time.Time `db:"created_at"`
}

// CommunityPost represents a row in the community_posts table.
type CommunityPost struct {
	PostID    string    `db:"post_id"`
	UserID    string    `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}
