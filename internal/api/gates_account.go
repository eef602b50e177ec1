package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worldhappiness/api/internal/api/shared"
	"github.com/worldhappiness/api/internal/store"
)

// credentialsRequest is the body shared by the register and login
// endpoints.
type credentialsRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RequireCredentials decodes the request body and fails unless both
// email and password are present. The decoded values land in the state
// for the gates that follow.
func (g *Gates) RequireCredentials(r *http.Request, st State) Outcome {
	var req credentialsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return FailCause(KindCredentialsMissing, err)
	}

	if err := g.validate.Struct(req); err != nil {
		return FailCause(KindCredentialsMissing, err)
	}

	st.Email = req.Email
	st.Password = req.Password
	return Proceed(st)
}

// LookupUser resolves the target identity by email, taken from the
// credentials body when present and from the {email} path parameter
// otherwise. The email is sanitization-checked first. A missing user is
// not a failure here: the state's User stays nil and the judgment is
// deferred to a later gate, which lets the same lookup serve register
// (must not exist), login and the per-user subroutes (must exist).
func (g *Gates) LookupUser(r *http.Request, st State) Outcome {
	email := st.Email
	if email == "" {
		email = chi.URLParam(r, "email")
	}

	if !sanitary(email) {
		return Fail(KindUnsanitaryInput)
	}

	user, err := g.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			st.User = nil
			return Proceed(st)
		}
		return FailCause(KindInternal, err)
	}

	st.User = user
	return Proceed(st)
}

// VerifyPassword checks the supplied password against the stored hash.
// An unknown email and a wrong password raise the identical condition,
// so error content cannot be used to enumerate users.
func (g *Gates) VerifyPassword(r *http.Request, st State) Outcome {
	if st.User == nil {
		return Fail(KindLoginInvalid)
	}

	if err := g.verifier.Compare(st.User.HashedPassword, st.Password); err != nil {
		return Fail(KindLoginInvalid)
	}

	return Proceed(st)
}

// RequireUserExists fails when the lookup found no user.
func RequireUserExists(r *http.Request, st State) Outcome {
	if st.User == nil {
		return Fail(KindUserNotFound)
	}
	return Proceed(st)
}

// RequireUserAbsent fails when the lookup found an existing user.
func RequireUserAbsent(r *http.Request, st State) Outcome {
	if st.User != nil {
		return Fail(KindUserExists)
	}
	return Proceed(st)
}
