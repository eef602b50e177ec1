package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldhappiness/api/internal/domain"
	"github.com/worldhappiness/api/internal/mocks"
	"github.com/worldhappiness/api/internal/service/auth"
)

// withURLParam attaches a chi route parameter to the request context,
// the way the router does for a matched pattern.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newAccountGates(users *mocks.MockUserStore) *Gates {
	tokens := auth.NewTestTokenService(testSigningKey, time.Now)
	return NewGates(tokens, users, auth.NewBcryptVerifier())
}

func TestRequireCredentials(t *testing.T) {
	t.Parallel()

	gates := newAccountGates(mocks.NewMockUserStore())

	tests := []struct {
		name     string
		body     string
		wantKind Kind
	}{
		{
			name:     "both fields present",
			body:     `{"email":"mike@gmail.com","password":"mike1234"}`,
			wantKind: KindNone,
		},
		{
			name:     "missing password",
			body:     `{"email":"mike@gmail.com"}`,
			wantKind: KindCredentialsMissing,
		},
		{
			name:     "missing email",
			body:     `{"password":"mike1234"}`,
			wantKind: KindCredentialsMissing,
		},
		{
			name:     "empty strings",
			body:     `{"email":"","password":""}`,
			wantKind: KindCredentialsMissing,
		},
		{
			name:     "empty body",
			body:     ``,
			wantKind: KindCredentialsMissing,
		},
		{
			name:     "malformed json",
			body:     `{"email":`,
			wantKind: KindCredentialsMissing,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(tc.body))
			r.Header.Set("Content-Type", "application/json")

			out := gates.RequireCredentials(r, State{})

			kind, failed := out.Failed()
			if tc.wantKind == KindNone {
				require.False(t, failed)
				assert.Equal(t, "mike@gmail.com", out.state.Email)
				assert.Equal(t, "mike1234", out.state.Password)
				return
			}
			require.True(t, failed)
			assert.Equal(t, tc.wantKind, kind)
		})
	}
}

func TestLookupUser(t *testing.T) {
	t.Parallel()

	t.Run("finds an existing user by state email", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		existing := &domain.User{Email: "mike@gmail.com", HashedPassword: "hash"}
		users.Users["mike@gmail.com"] = existing
		gates := newAccountGates(users)

		r := httptest.NewRequest(http.MethodPost, "/user/login", nil)
		out := gates.LookupUser(r, State{Email: "mike@gmail.com"})

		_, failed := out.Failed()
		require.False(t, failed)
		assert.Same(t, existing, out.state.User)
	})

	t.Run("falls back to the email path parameter", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		existing := &domain.User{Email: "anna@gmail.com", HashedPassword: "hash"}
		users.Users["anna@gmail.com"] = existing
		gates := newAccountGates(users)

		r := httptest.NewRequest(http.MethodGet, "/user/anna@gmail.com/profile", nil)
		r = withURLParam(r, "email", "anna@gmail.com")

		out := gates.LookupUser(r, State{})

		_, failed := out.Failed()
		require.False(t, failed)
		assert.Same(t, existing, out.state.User)
	})

	t.Run("a missing user passes with a nil identity", func(t *testing.T) {
		t.Parallel()
		gates := newAccountGates(mocks.NewMockUserStore())

		r := httptest.NewRequest(http.MethodPost, "/user/register", nil)
		out := gates.LookupUser(r, State{Email: "nobody@gmail.com"})

		_, failed := out.Failed()
		require.False(t, failed)
		assert.Nil(t, out.state.User)
	})

	t.Run("rejects an email containing html", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		lookedUp := false
		users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			lookedUp = true
			return nil, nil
		}
		gates := newAccountGates(users)

		r := httptest.NewRequest(http.MethodPost, "/user/login", nil)
		out := gates.LookupUser(r, State{Email: "<script>alert('x')</script>@gmail.com"})

		kind, failed := out.Failed()
		require.True(t, failed)
		assert.Equal(t, KindUnsanitaryInput, kind)
		assert.False(t, lookedUp, "store must not be queried with unsanitary input")
	})

	t.Run("store failures surface as internal", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		users.GetByEmailError = errors.New("connection reset")
		gates := newAccountGates(users)

		r := httptest.NewRequest(http.MethodPost, "/user/login", nil)
		out := gates.LookupUser(r, State{Email: "mike@gmail.com"})

		kind, failed := out.Failed()
		require.True(t, failed)
		assert.Equal(t, KindInternal, kind)
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash("mike1234")
	require.NoError(t, err)

	gates := newAccountGates(mocks.NewMockUserStore())
	r := httptest.NewRequest(http.MethodPost, "/user/login", nil)

	t.Run("accepts the matching password", func(t *testing.T) {
		t.Parallel()
		st := State{User: &domain.User{Email: "mike@gmail.com", HashedPassword: hash}, Password: "mike1234"}
		out := gates.VerifyPassword(r, st)
		_, failed := out.Failed()
		assert.False(t, failed)
	})

	t.Run("wrong password and unknown user raise the same condition", func(t *testing.T) {
		t.Parallel()
		wrongPw := gates.VerifyPassword(r, State{
			User:     &domain.User{Email: "mike@gmail.com", HashedPassword: hash},
			Password: "nottherightone",
		})
		noUser := gates.VerifyPassword(r, State{User: nil, Password: "mike1234"})

		wrongKind, failed := wrongPw.Failed()
		require.True(t, failed)
		noUserKind, failed := noUser.Failed()
		require.True(t, failed)

		assert.Equal(t, KindLoginInvalid, wrongKind)
		assert.Equal(t, wrongKind, noUserKind)
	})
}

func TestRequireUserExistsAndAbsent(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	someone := &domain.User{Email: "mike@gmail.com"}

	t.Run("exists", func(t *testing.T) {
		t.Parallel()
		_, failed := RequireUserExists(r, State{User: someone}).Failed()
		assert.False(t, failed)

		kind, failed := RequireUserExists(r, State{}).Failed()
		require.True(t, failed)
		assert.Equal(t, KindUserNotFound, kind)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		_, failed := RequireUserAbsent(r, State{}).Failed()
		assert.False(t, failed)

		kind, failed := RequireUserAbsent(r, State{User: someone}).Failed()
		require.True(t, failed)
		assert.Equal(t, KindUserExists, kind)
	})
}
