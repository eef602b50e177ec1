package api

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/worldhappiness/api/internal/service/auth"
)

// bearerPattern matches an Authorization header of the form
// "Bearer <token>".
var bearerPattern = regexp.MustCompile(`^Bearer\s(.+)$`)

// Authorize enforces bearer-token authentication. When an upstream
// lookup gate has already resolved a target identity, the verified
// claim must match it, giving owner-only semantics on per-user routes.
// The state passes through unchanged on success.
func (g *Gates) Authorize(r *http.Request, st State) Outcome {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Fail(KindAuthHeaderMissing)
	}

	match := bearerPattern.FindStringSubmatch(header)
	if match == nil {
		return Fail(KindAuthHeaderMalformed)
	}

	claims, err := g.tokens.Verify(r.Context(), match[1])
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			return Fail(KindTokenExpired)
		case errors.Is(err, auth.ErrMalformedToken):
			return Fail(KindTokenMalformed)
		default:
			return FailCause(KindTokenInvalid, err)
		}
	}

	if st.User != nil && st.User.Email != claims.Email {
		return Fail(KindForbidden)
	}

	return Proceed(st)
}
