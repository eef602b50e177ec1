package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/worldhappiness/api/internal/api/shared"
	"github.com/worldhappiness/api/internal/store"
)

// RankingsHandler holds the terminals for the read-only data endpoints.
// The format and allow-list gates run first, so the parameters seen
// here are already validated.
type RankingsHandler struct {
	rankings store.RankingStore
}

// NewRankingsHandler creates a new RankingsHandler with the given store.
func NewRankingsHandler(rankings store.RankingStore) *RankingsHandler {
	return &RankingsHandler{rankings: rankings}
}

// Factors is the terminal for GET /factors/{year}.
func (h *RankingsHandler) Factors(w http.ResponseWriter, r *http.Request, st State) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		// The format gate guarantees four digits; anything else here
		// is a routing defect.
		WriteCondition(w, r, KindInternal, err)
		return
	}

	query := r.URL.Query()
	limit := 0
	if raw := query.Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	rows, err := h.rankings.FactorsByYear(r.Context(), year, query.Get("country"), limit)
	if err != nil {
		WriteCondition(w, r, KindInternal, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}

// Rankings is the terminal for GET /rankings.
func (h *RankingsHandler) Rankings(w http.ResponseWriter, r *http.Request, st State) {
	query := r.URL.Query()

	// nil means no year filter; "0000" filters on year zero and so
	// matches nothing, it does not disable the filter.
	var year *int
	if raw := query.Get("year"); raw != "" {
		n, _ := strconv.Atoi(raw)
		year = &n
	}

	rows, err := h.rankings.Rankings(r.Context(), year, query.Get("country"))
	if err != nil {
		WriteCondition(w, r, KindInternal, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}

// Countries is the terminal for GET /countries.
func (h *RankingsHandler) Countries(w http.ResponseWriter, r *http.Request, st State) {
	countries, err := h.rankings.Countries(r.Context())
	if err != nil {
		WriteCondition(w, r, KindInternal, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, countries)
}
