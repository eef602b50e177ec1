package api

import (
	"net/http"

	"github.com/worldhappiness/api/internal/api/shared"
	"github.com/worldhappiness/api/internal/platform/logger"
	"github.com/worldhappiness/api/internal/redact"
)

// Kind is the closed set of failure conditions a gate or handler can
// raise. Every kind maps to exactly one HTTP status and client message;
// anything outside the set falls through to a generic 500 so internal
// detail never leaks.
type Kind int

const (
	// KindNone is the zero value and means no failure.
	KindNone Kind = iota

	KindRouteNotFound
	KindUnsanitaryInput
	KindCountryFormat
	KindYearFormat
	KindLimitFormat
	KindRankingsParams
	KindFactorsParams
	KindCountriesParams
	KindProfileBodyIncomplete
	KindProfileFieldType
	KindProfileDateFormat
	KindProfileDateFuture
	KindCredentialsMissing
	KindUserNotFound
	KindLoginInvalid
	KindUserExists
	KindAuthHeaderMissing
	KindAuthHeaderMalformed
	KindForbidden
	KindTokenInvalid
	KindTokenMalformed
	KindTokenExpired
	KindInternal
)

// Status returns the HTTP status code for the condition. Unrecognized
// kinds map to 500.
func (k Kind) Status() int {
	switch k {
	case KindRouteNotFound, KindUserNotFound:
		return http.StatusNotFound
	case KindUnsanitaryInput,
		KindCountryFormat,
		KindYearFormat,
		KindLimitFormat,
		KindRankingsParams,
		KindFactorsParams,
		KindCountriesParams,
		KindProfileBodyIncomplete,
		KindProfileFieldType,
		KindProfileDateFormat,
		KindProfileDateFuture,
		KindCredentialsMissing:
		return http.StatusBadRequest
	case KindLoginInvalid,
		KindAuthHeaderMissing,
		KindAuthHeaderMalformed,
		KindTokenInvalid,
		KindTokenMalformed,
		KindTokenExpired:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUserExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the documented client-facing message for the
// condition. Unrecognized kinds map to the generic internal message.
// These strings are wire contract; clients match on them.
func (k Kind) Message() string {
	switch k {
	case KindRouteNotFound:
		return "Not Found"
	case KindUnsanitaryInput:
		return "Please don't include html in your input. We'll assume you're trying to hack us."
	case KindCountryFormat:
		return "Invalid country format. Country query parameter cannot contain numbers."
	case KindYearFormat:
		return "Invalid year format. Format must be yyyy."
	case KindLimitFormat:
		return "Invalid limit query. Limit must be a positive number."
	case KindRankingsParams:
		return "Invalid query parameters. Only year and country are permitted."
	case KindFactorsParams:
		return "Invalid query parameters. Only limit and country are permitted."
	case KindCountriesParams:
		return "Invalid query parameters. Query parameters are not permitted."
	case KindProfileBodyIncomplete:
		return "Request body incomplete: firstName, lastName, dob and address are required."
	case KindProfileFieldType:
		return "Request body invalid, firstName, lastName and address must be strings only."
	case KindProfileDateFormat:
		return "Invalid input: dob must be a real date in format YYYY-MM-DD."
	case KindProfileDateFuture:
		return "Invalid input: dob must be a date in the past."
	case KindCredentialsMissing:
		return "Request body incomplete, both email and password are required"
	case KindUserNotFound:
		return "User not found"
	case KindLoginInvalid:
		return "Incorrect email or password"
	case KindUserExists:
		return "User already exists"
	case KindAuthHeaderMissing:
		return "Authorization header ('Bearer token') not found"
	case KindAuthHeaderMalformed:
		return "Authorization header is malformed"
	case KindForbidden:
		return "Forbidden"
	case KindTokenInvalid, KindTokenMalformed:
		return "Invalid JWT token"
	case KindTokenExpired:
		return "JWT token has expired"
	default:
		return "Internal server error"
	}
}

// String returns the condition name, for logs and test output.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindRouteNotFound:
		return "RouteNotFound"
	case KindUnsanitaryInput:
		return "UnsanitaryInput"
	case KindCountryFormat:
		return "CountryFormat"
	case KindYearFormat:
		return "YearFormat"
	case KindLimitFormat:
		return "LimitFormat"
	case KindRankingsParams:
		return "RankingsParams"
	case KindFactorsParams:
		return "FactorsParams"
	case KindCountriesParams:
		return "CountriesParams"
	case KindProfileBodyIncomplete:
		return "ProfileBodyIncomplete"
	case KindProfileFieldType:
		return "ProfileFieldType"
	case KindProfileDateFormat:
		return "ProfileDateFormat"
	case KindProfileDateFuture:
		return "ProfileDateFuture"
	case KindCredentialsMissing:
		return "CredentialsMissing"
	case KindUserNotFound:
		return "UserNotFound"
	case KindLoginInvalid:
		return "LoginInvalid"
	case KindUserExists:
		return "UserExists"
	case KindAuthHeaderMissing:
		return "AuthHeaderMissing"
	case KindAuthHeaderMalformed:
		return "AuthHeaderMalformed"
	case KindForbidden:
		return "Forbidden"
	case KindTokenInvalid:
		return "TokenInvalid"
	case KindTokenMalformed:
		return "TokenMalformed"
	case KindTokenExpired:
		return "TokenExpired"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// WriteCondition translates a failure condition into its HTTP response.
// The cause, when present, is logged through the request-scoped logger
// (which carries the trace ID) but is never included in the response
// body.
func WriteCondition(w http.ResponseWriter, r *http.Request, kind Kind, cause error) {
	status := kind.Status()

	if status >= http.StatusInternalServerError && cause != nil {
		logger.FromContext(r.Context()).Error("request failed",
			"condition", kind.String(),
			"error", redact.Error(cause))
	}

	shared.RespondWithError(w, r, status, kind.Message())
}
