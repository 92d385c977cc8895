package storage

import "context"

// Session represents the persisted authentication state of the worker
type Session struct {
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// AuthStorage defines interface for storing session data on the client
type AuthStorage interface {
	// SaveSession stores session data, replacing any previous session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session.
	// Returns ErrAuthNotFound if no session exists.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
