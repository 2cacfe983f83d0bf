package store

import (
	"context"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// UserStore defines the interface for user credential persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; stores never see plaintext.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by exact username match.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
