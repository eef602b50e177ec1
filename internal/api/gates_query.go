package api

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var (
	digitPattern = regexp.MustCompile(`\d`)
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// QueryFormat validates the format of the country, year and limit
// parameters when present. The year may arrive as a path parameter
// (factors routes) or a query parameter (rankings); both are held to
// the same yyyy shape.
func QueryFormat(r *http.Request, st State) Outcome {
	query := r.URL.Query()

	if country := query.Get("country"); country != "" && digitPattern.MatchString(country) {
		return Fail(KindCountryFormat)
	}

	year := chi.URLParam(r, "year")
	if year == "" {
		year = query.Get("year")
	}
	if year != "" && !yearPattern.MatchString(year) {
		return Fail(KindYearFormat)
	}

	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return Fail(KindLimitFormat)
		}
	}

	return Proceed(st)
}

// AllowParams builds the allow-list gate for one endpoint: any query
// parameter outside the permitted set raises the endpoint's own
// condition, whatever the parameter's value.
func AllowParams(kind Kind, permitted ...string) Gate {
	allowed := make(map[string]bool, len(permitted))
	for _, name := range permitted {
		allowed[name] = true
	}

	return func(r *http.Request, st State) Outcome {
		for name := range r.URL.Query() {
			if !allowed[name] {
				return Fail(kind)
			}
		}
		return Proceed(st)
	}
}
