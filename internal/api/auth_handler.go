package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/worldhappiness/api/internal/api/shared"
	"github.com/worldhappiness/api/internal/domain"
	"github.com/worldhappiness/api/internal/service/auth"
	"github.com/worldhappiness/api/internal/store"
)

// AuthHandler holds the terminals for the account lifecycle endpoints.
// Validation and lookup happen in the gate chain; by the time a
// terminal runs the state carries everything it needs.
type AuthHandler struct {
	users         store.UserStore
	tokens        auth.TokenService
	hasher        auth.PasswordHasher
	tokenLifetime time.Duration
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	users store.UserStore,
	tokens auth.TokenService,
	hasher auth.PasswordHasher,
	tokenLifetime time.Duration,
) *AuthHandler {
	return &AuthHandler{
		users:         users,
		tokens:        tokens,
		hasher:        hasher,
		tokenLifetime: tokenLifetime,
	}
}

// Register is the terminal for POST /user/register. The chain has
// already confirmed the credentials are present, sanitary and unused.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request, st State) {
	hash, err := h.hasher.Hash(st.Password)
	if err != nil {
		WriteCondition(w, r, KindInternal, err)
		return
	}

	user, err := domain.NewUser(st.Email, hash)
	if err != nil {
		WriteCondition(w, r, KindInternal, err)
		return
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		// The lookup gate and this insert are separate statements, so
		// a concurrent registration can still win the race.
		if errors.Is(err, store.ErrEmailExists) {
			WriteCondition(w, r, KindUserExists, nil)
			return
		}
		WriteCondition(w, r, KindInternal, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Message: "User created",
	})
}

// Login is the terminal for POST /user/login. The password has already
// been verified; all that remains is issuing the token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, st State) {
	token, err := h.tokens.Issue(r.Context(), st.User.Email, h.tokenLifetime)
	if err != nil {
		WriteCondition(w, r, KindInternal, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(h.tokenLifetime.Seconds()),
	})
}
