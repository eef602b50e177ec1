package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token signature does not verify
	// under the process signing key.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMalformedToken indicates the input is not a well-formed token.
	ErrMalformedToken = errors.New("malformed authentication token")

	// ErrExpiredToken indicates the token's embedded expiry has passed.
	ErrExpiredToken = errors.New("authentication token has expired")
)
