package api

import (
	"errors"
	"net/http"

	"github.com/worldhappiness/api/internal/api/shared"
	"github.com/worldhappiness/api/internal/domain"
	"github.com/worldhappiness/api/internal/store"
)

// ProfileHandler holds the terminals for the per-user profile
// endpoints.
type ProfileHandler struct {
	profiles store.ProfileStore
}

// NewProfileHandler creates a new ProfileHandler with the given store.
func NewProfileHandler(profiles store.ProfileStore) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get is the terminal for GET /user/{email}/profile. When the chain
// recovered from an auth failure the state is marked PublicView and
// only the public field subset is returned; otherwise the owner gets
// the full record.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request, st State) {
	record, err := h.profiles.GetByEmail(r.Context(), st.User.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			WriteCondition(w, r, KindUserNotFound, nil)
			return
		}
		WriteCondition(w, r, KindInternal, err)
		return
	}

	public := PublicProfileResponse{
		Email:     record.Email,
		FirstName: record.FirstName,
		LastName:  record.LastName,
	}

	if st.PublicView {
		shared.RespondWithJSON(w, r, http.StatusOK, public)
		return
	}

	var dob *string
	if record.DOB != nil {
		formatted := record.DOB.Format(domain.DateLayout)
		dob = &formatted
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		PublicProfileResponse: public,
		DOB:                   dob,
		Address:               record.Address,
	})
}

// Put is the terminal for PUT /user/{email}/profile. The upsert is a
// single statement keyed on the owning user: insert when absent, full
// overwrite of the four fields when present, so repeating the same
// body is idempotent.
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request, st State) {
	in := st.Profile

	profile, err := domain.NewProfile(st.User.ID, in.FirstName, in.LastName, in.DOB, in.Address)
	if err != nil {
		WriteCondition(w, r, KindInternal, err)
		return
	}

	if err := h.profiles.Upsert(r.Context(), profile); err != nil {
		WriteCondition(w, r, KindInternal, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileEchoResponse{
		Email:     st.User.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		DOB:       in.DOB.Format(domain.DateLayout),
		Address:   in.Address,
	})
}
