package storage

import "errors"

// Common client storage errors
var (
	// ErrCacheMiss indicates that no usable cache entry exists for the
	// scope. A corrupt or (while online) expired entry is reported the
	// same way as an absent one.
	ErrCacheMiss = errors.New("cache miss")

	// ErrActionNotFound indicates that no queued action exists for the
	// visit id
	ErrActionNotFound = errors.New("offline action not found")

	// ErrAuthNotFound indicates that no session data exists
	ErrAuthNotFound = errors.New("authentication data not found")
)
