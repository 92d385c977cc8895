package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that the worker account was not found
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that a worker with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrVisitNotFound indicates that the visit was not found
	ErrVisitNotFound = errors.New("visit not found")

	// ErrInvalidTransition indicates that the visit is not in a status
	// that allows the requested change
	ErrInvalidTransition = errors.New("invalid status transition")
)
