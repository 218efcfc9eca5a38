package repositories

import (
	"context"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique display name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int64, error)

	// SumUserPoints returns the sum of all user balances, i.e. the points
	// currently in circulation.
	SumUserPoints(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user together with their welcome grant ledger
	// entry, atomically.
	SaveUser(ctx context.Context, user domain.User, welcome domain.Transaction) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
