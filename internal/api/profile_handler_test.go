package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldhappiness/api/internal/domain"
	"github.com/worldhappiness/api/internal/mocks"
	"github.com/worldhappiness/api/internal/store"
)

func strPtr(s string) *string { return &s }

func seededProfileStore() *mocks.MockProfileStore {
	profiles := mocks.NewMockProfileStore()
	dob := time.Date(1963, 2, 17, 0, 0, 0, 0, time.UTC)
	profiles.Records["mike@gmail.com"] = &store.ProfileRecord{
		Email:     "mike@gmail.com",
		FirstName: strPtr("Michael"),
		LastName:  strPtr("Jordan"),
		DOB:       &dob,
		Address:   strPtr("123 Fake Street, Springfield"),
	}
	profiles.Records["anna@gmail.com"] = &store.ProfileRecord{
		Email: "anna@gmail.com",
	}
	return profiles
}

func TestProfileGet(t *testing.T) {
	t.Parallel()

	owner := &domain.User{ID: uuid.New(), Email: "mike@gmail.com"}

	t.Run("owner view returns every field", func(t *testing.T) {
		t.Parallel()
		handler := NewProfileHandler(seededProfileStore())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/user/mike@gmail.com/profile", nil)
		handler.Get(w, r, State{User: owner})

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "mike@gmail.com", body["email"])
		assert.Equal(t, "Michael", body["firstName"])
		assert.Equal(t, "Jordan", body["lastName"])
		assert.Equal(t, "1963-02-17", body["dob"])
		assert.Equal(t, "123 Fake Street, Springfield", body["address"])
	})

	t.Run("public view omits dob and address entirely", func(t *testing.T) {
		t.Parallel()
		handler := NewProfileHandler(seededProfileStore())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/user/mike@gmail.com/profile", nil)
		handler.Get(w, r, State{User: owner, PublicView: true})

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "mike@gmail.com", body["email"])
		assert.Equal(t, "Michael", body["firstName"])
		assert.Equal(t, "Jordan", body["lastName"])
		_, hasDOB := body["dob"]
		_, hasAddress := body["address"]
		assert.False(t, hasDOB)
		assert.False(t, hasAddress)
	})

	t.Run("a user without a profile row gets nulls", func(t *testing.T) {
		t.Parallel()
		handler := NewProfileHandler(seededProfileStore())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/user/anna@gmail.com/profile", nil)
		handler.Get(w, r, State{User: &domain.User{ID: uuid.New(), Email: "anna@gmail.com"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"email":"anna@gmail.com","firstName":null,"lastName":null,"dob":null,"address":null}`,
			w.Body.String())
	})
}

func TestProfilePut(t *testing.T) {
	t.Parallel()

	owner := &domain.User{ID: uuid.New(), Email: "mike@gmail.com"}
	input := &ProfileInput{
		FirstName: "Michael",
		LastName:  "Jordan",
		DOB:       time.Date(1963, 2, 17, 0, 0, 0, 0, time.UTC),
		Address:   "123 Fake Street, Springfield",
	}

	t.Run("stores the profile and echoes it back", func(t *testing.T) {
		t.Parallel()
		profiles := mocks.NewMockProfileStore()
		handler := NewProfileHandler(profiles)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/user/mike@gmail.com/profile", nil)
		handler.Put(w, r, State{User: owner, Profile: input})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"email":"mike@gmail.com","firstName":"Michael","lastName":"Jordan","dob":"1963-02-17","address":"123 Fake Street, Springfield"}`,
			w.Body.String())

		stored := profiles.Profiles[owner.ID]
		require.NotNil(t, stored)
		assert.Equal(t, "Michael", stored.FirstName)
		assert.Equal(t, input.DOB, stored.DOB)
	})

	t.Run("repeating the same write is idempotent", func(t *testing.T) {
		t.Parallel()
		profiles := mocks.NewMockProfileStore()
		handler := NewProfileHandler(profiles)

		first := httptest.NewRecorder()
		handler.Put(first, httptest.NewRequest(http.MethodPut, "/user/mike@gmail.com/profile", nil), State{User: owner, Profile: input})
		second := httptest.NewRecorder()
		handler.Put(second, httptest.NewRequest(http.MethodPut, "/user/mike@gmail.com/profile", nil), State{User: owner, Profile: input})

		assert.Equal(t, http.StatusOK, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
		assert.Len(t, profiles.Profiles, 1)
	})
}
