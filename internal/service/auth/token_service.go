package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/worldhappiness/api/internal/platform/logger"
)

// TokenService signs and verifies the bearer tokens that carry an
// identity claim and expiry. Tokens are stateless: validity depends
// only on the signature and the embedded expiry at verification time.
type TokenService interface {
	// Issue creates a signed token for the given email, expiring after
	// the given lifetime. Returns the token string or an error if
	// signing fails.
	Issue(ctx context.Context, email string, lifetime time.Duration) (string, error)

	// Verify checks the token signature and expiry and extracts the
	// claim. Fails with ErrMalformedToken when the input is not a
	// well-formed token, ErrExpiredToken when the embedded expiry has
	// passed, and ErrInvalidToken for any other verification failure.
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified payload of a token.
type Claims struct {
	Email     string
	ExpiresAt time.Time
}

// hmacTokenService implements TokenService using HMAC-SHA256 signing.
// The signing key is process-wide configuration, read-only after
// construction and shared by all requests.
type hmacTokenService struct {
	signingKey []byte
	timeFunc   func() time.Time // Injectable for testing
}

// tokenClaims is the wire structure embedded in issued tokens.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenService implements TokenService
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService using HMAC-SHA256 signing with
// the given key. The key must be at least 32 bytes.
func NewTokenService(signingKey string) (TokenService, error) {
	if len(signingKey) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey: []byte(signingKey),
		timeFunc:   time.Now,
	}, nil
}

// Issue creates a signed token embedding {email, exp}.
func (s *hmacTokenService) Issue(ctx context.Context, email string, lifetime time.Duration) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signedToken, nil
}

// Verify validates a token and returns the claims if valid.
func (s *hmacTokenService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time {
			return now
		}),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		// The expiry check wins over any other failure so an expired
		// token is always reported as expired. The parser stops at the
		// first signature failure without reading the claims, so the
		// expiry has to be re-checked unverified on that path.
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token verification failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("token verification failed: malformed token", "error", err)
			return nil, ErrMalformedToken
		default:
			if expiredUnverified(tokenString, now) {
				log.Debug("token verification failed: token expired", "error", err)
				return nil, ErrExpiredToken
			}
			log.Debug("token verification failed", "error", err)
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		log.Debug("token verification failed: invalid claims")
		return nil, ErrInvalidToken
	}

	return &Claims{
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// expiredUnverified reports whether the token carries an embedded
// expiry in the past, ignoring the signature entirely. A token that is
// both forged and expired still reports as expired.
func expiredUnverified(tokenString string, now time.Time) bool {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(now)
}
