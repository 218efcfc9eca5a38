package domain

import "time"

// CommunityPost is a short status update shown on the community feed.
type CommunityPost struct {
	PostID    string    `json:"postID"` // Primary Key (UUID)
	UserID    string    `json:"userID"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
