package storage

import (
	"context"
	"time"

	"github.com/iudanet/homevisit/internal/models"
)

// UserStorage defines the interface for worker account persistence
type UserStorage interface {
	// CreateUser creates a new worker account.
	// Returns ErrUserAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a worker by username.
	// Returns ErrUserNotFound if the account doesn't exist.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a worker by id.
	// Returns ErrUserNotFound if the account doesn't exist.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
