package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/worldhappiness/api/internal/service/auth"
	"github.com/worldhappiness/api/internal/store"
)

// Gates bundles the dependencies shared by the request gates. Each gate
// method satisfies the Gate signature, so a route chain is assembled
// from method values plus the free-standing gates.
type Gates struct {
	tokens   auth.TokenService
	users    store.UserStore
	verifier auth.PasswordVerifier
	validate *validator.Validate
}

// NewGates creates a Gates with the given dependencies.
func NewGates(
	tokens auth.TokenService,
	users store.UserStore,
	verifier auth.PasswordVerifier,
) *Gates {
	return &Gates{
		tokens:   tokens,
		users:    users,
		verifier: verifier,
		validate: validator.New(),
	}
}
