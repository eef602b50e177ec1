package api

import (
	"net/http"

	"github.com/worldhappiness/api/internal/domain"
)

// State is the per-request bag threaded through a gate chain. Each gate
// receives the state by value and returns the next value, so there is
// no shared mutation between stages; a request's state exists only for
// that one pipeline invocation.
type State struct {
	// Email and Password hold the credentials decoded from a login or
	// register body.
	Email    string
	Password string

	// User is the identity resolved by the lookup gate. nil means the
	// lookup ran and found nobody, which is itself a valid outcome;
	// existence judgments belong to later gates.
	User *domain.User

	// Profile holds the validated profile write body.
	Profile *ProfileInput

	// PublicView marks the request as downgraded to the
	// unauthenticated-safe subset of profile fields.
	PublicView bool
}

// Outcome is the result of running one gate: continue with an updated
// state, or fail with a named condition. Failures carry an optional
// cause for logging.
type Outcome struct {
	state     State
	kind      Kind
	cause     error
	recovered bool
}

// Proceed continues the chain with the given state.
func Proceed(st State) Outcome {
	return Outcome{state: st}
}

// Fail aborts the chain with the named condition.
func Fail(kind Kind) Outcome {
	return Outcome{kind: kind}
}

// FailCause aborts the chain with the named condition, attaching an
// underlying error for the logs.
func FailCause(kind Kind, cause error) Outcome {
	return Outcome{kind: kind, cause: cause}
}

// Recovered continues the chain with the given state after a failure
// was intercepted and neutralized.
func Recovered(st State) Outcome {
	return Outcome{state: st, recovered: true}
}

// Failed reports whether the outcome aborts the chain, and with which
// condition.
func (o Outcome) Failed() (Kind, bool) {
	return o.kind, o.kind != KindNone
}

// IsRecovered reports whether the outcome came from an intercepted
// failure rather than a plain pass.
func (o Outcome) IsRecovered() bool {
	return o.recovered
}

// Gate is a single-responsibility step in a request pipeline. It may
// read the request and the accumulated state, and either passes an
// updated state onward or raises a condition.
type Gate func(r *http.Request, st State) Outcome

// Terminal performs the data operation at the end of a gate chain and
// writes the response.
type Terminal func(w http.ResponseWriter, r *http.Request, st State)

// Handle composes a gate chain in front of a terminal handler. Gates
// run in order; the first failure short-circuits straight to the
// condition translator and the terminal never runs.
func Handle(terminal Terminal, gates ...Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := State{}
		for _, gate := range gates {
			out := gate(r, st)
			if kind, failed := out.Failed(); failed {
				WriteCondition(w, r, kind, out.cause)
				return
			}
			st = out.state
		}
		terminal(w, r, st)
	}
}

// Recover wraps a gate so that a failure with one of the listed kinds
// becomes a continuation with a patched state instead of aborting the
// chain. Any other failure, and any success, passes through untouched.
func Recover(gate Gate, patch func(State) State, kinds ...Kind) Gate {
	return func(r *http.Request, st State) Outcome {
		out := gate(r, st)
		kind, failed := out.Failed()
		if !failed {
			return out
		}
		for _, k := range kinds {
			if kind == k {
				return Recovered(patch(st))
			}
		}
		return out
	}
}

// NotFoundHandler produces the RouteNotFound condition for unmatched
// routes, keeping 404s on the same translated path as every other
// failure.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteCondition(w, r, KindRouteNotFound, nil)
	}
}
