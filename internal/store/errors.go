package store

import "errors"

// Common store errors returned by the persistence interfaces.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists indicates a user with the same email already exists.
	ErrEmailExists = errors.New("email already exists")
)
