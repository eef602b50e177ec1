package api

import (
	"net/http"
	"time"

	"github.com/worldhappiness/api/internal/api/shared"
	"github.com/worldhappiness/api/internal/domain"
)

// ProfileInput is the validated profile write body carried in the state
// once every profile gate has passed.
type ProfileInput struct {
	FirstName string
	LastName  string
	DOB       time.Time
	Address   string
}

// present reports whether a decoded JSON value counts as supplied.
// Null, empty strings, zero numbers and false are all treated as
// absent, matching the body-completeness contract.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	default:
		return true
	}
}

// ProfileBody validates the profile write body: all four fields must be
// supplied, the three textual fields must be strings, dob must be a
// real calendar date in its canonical YYYY-MM-DD form and strictly in
// the past, and no textual field may contain HTML. The validated input
// lands in the state for the terminal upsert.
func ProfileBody(r *http.Request, st State) Outcome {
	var raw struct {
		FirstName any `json:"firstName"`
		LastName  any `json:"lastName"`
		DOB       any `json:"dob"`
		Address   any `json:"address"`
	}

	if err := shared.DecodeJSON(r, &raw); err != nil {
		return FailCause(KindProfileBodyIncomplete, err)
	}

	if !present(raw.FirstName) || !present(raw.LastName) || !present(raw.DOB) || !present(raw.Address) {
		return Fail(KindProfileBodyIncomplete)
	}

	firstName, firstOK := raw.FirstName.(string)
	lastName, lastOK := raw.LastName.(string)
	address, addressOK := raw.Address.(string)
	if !firstOK || !lastOK || !addressOK {
		return Fail(KindProfileFieldType)
	}

	dobString, ok := raw.DOB.(string)
	if !ok {
		return Fail(KindProfileDateFormat)
	}

	// The literal must round-trip through the canonical layout, which
	// rejects non-existent dates and alternate formats alike.
	dob, err := time.Parse(domain.DateLayout, dobString)
	if err != nil || dob.Format(domain.DateLayout) != dobString {
		return Fail(KindProfileDateFormat)
	}

	if dob.After(time.Now()) {
		return Fail(KindProfileDateFuture)
	}

	for _, field := range []string{firstName, lastName, dobString, address} {
		if !sanitary(field) {
			return Fail(KindUnsanitaryInput)
		}
	}

	st.Profile = &ProfileInput{
		FirstName: firstName,
		LastName:  lastName,
		DOB:       dob,
		Address:   address,
	}
	return Proceed(st)
}

// PublicView is the state patch applied when a profile read recovers
// from a Forbidden or missing-header failure: the request continues,
// downgraded to the public field subset.
func PublicView(st State) State {
	st.PublicView = true
	return st
}
