package store

import (
	"context"

	"github.com/worldhappiness/api/internal/domain"
)

// RankingStore defines read-only access to the happiness ranking data.
// The zero value of an optional filter ("" for country, 0 for limit,
// nil for year) means the filter is absent.
type RankingStore interface {
	// FactorsByYear returns the factor breakdown rows for one year,
	// optionally restricted to a single country, ordered by rank
	// ascending. A positive limit caps the result count.
	FactorsByYear(ctx context.Context, year int, country string, limit int) ([]domain.Factors, error)

	// Rankings returns overall ranking rows with optional year and
	// country filters, ordered by year descending then rank ascending.
	// The year is a pointer so that a requested year of 0000 filters on
	// zero instead of disabling the filter.
	Rankings(ctx context.Context, year *int, country string) ([]domain.Ranking, error)

	// Countries returns the distinct set of country names present in
	// the ranking data, sorted alphabetically.
	Countries(ctx context.Context) ([]string, error)
}
