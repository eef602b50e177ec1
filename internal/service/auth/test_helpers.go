package auth

import "time"

// NewTestTokenService creates a TokenService with an injectable clock.
// Intended for tests that need deterministic issue and expiry times.
func NewTestTokenService(signingKey string, timeFunc func() time.Time) TokenService {
	return &hmacTokenService{
		signingKey: []byte(signingKey),
		timeFunc:   timeFunc,
	}
}
