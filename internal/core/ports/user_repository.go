package ports

import (
	"context"

	"orderboard/internal/core/domain/model/account"
)

// UserRepository defines the persistence contract for operator accounts.
type UserRepository interface {
	// Add persists a new user and returns the stored user with its
	// database-assigned identifier.
	Add(ctx context.Context, user account.User) (account.User, error)

	// GetByUsername retrieves a user by login name.
	// Returns errs.ObjectNotFoundError when no such user exists.
	GetByUsername(ctx context.Context, username string) (account.User, error)
}
