package dto

import (
	"time"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
)

// UserResponse is the API representation of a user. The credential is never
// included.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to a UserResponse
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
	}
}

// DashboardResponse summarises a user's standing: their documents, cumulative
// reads and likes across them, and current balance.
type DashboardResponse struct {
	User       UserResponse       `json:"user"`
	Documents  []DocumentResponse `json:"documents"`
	TotalReads int64              `json:"totalReads"`
	TotalLikes int64              `json:"totalLikes"`
}
