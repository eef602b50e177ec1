package mocks

import (
	"context"
	"sort"

	"github.com/worldhappiness/api/internal/domain"
	"github.com/worldhappiness/api/internal/store"
)

// MockRankingStore implements store.RankingStore for testing. The
// default implementation filters and orders an in-memory dataset the
// same way the real store's SQL does.
type MockRankingStore struct {
	// Function fields for customizable behavior
	FactorsByYearFn func(ctx context.Context, year int, country string, limit int) ([]domain.Factors, error)
	RankingsFn      func(ctx context.Context, year *int, country string) ([]domain.Ranking, error)
	CountriesFn     func(ctx context.Context) ([]string, error)

	// Data for default implementation
	Rows     []RankingRow
	QueryErr error
}

// RankingRow is one seeded row of the in-memory dataset.
type RankingRow struct {
	Year    int
	Factors domain.Factors
}

// NewMockRankingStore creates a new mock store with initialized defaults
func NewMockRankingStore() *MockRankingStore {
	return &MockRankingStore{}
}

// Ensure MockRankingStore implements store.RankingStore
var _ store.RankingStore = (*MockRankingStore)(nil)

// FactorsByYear implements the RankingStore interface
func (m *MockRankingStore) FactorsByYear(ctx context.Context, year int, country string, limit int) ([]domain.Factors, error) {
	if m.FactorsByYearFn != nil {
		return m.FactorsByYearFn(ctx, year, country, limit)
	}

	if m.QueryErr != nil {
		return nil, m.QueryErr
	}

	results := make([]domain.Factors, 0)
	for _, row := range m.Rows {
		if row.Year != year {
			continue
		}
		if country != "" && row.Factors.Country != country {
			continue
		}
		results = append(results, row.Factors)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Rank < results[j].Rank })

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Rankings implements the RankingStore interface
func (m *MockRankingStore) Rankings(ctx context.Context, year *int, country string) ([]domain.Ranking, error) {
	if m.RankingsFn != nil {
		return m.RankingsFn(ctx, year, country)
	}

	if m.QueryErr != nil {
		return nil, m.QueryErr
	}

	results := make([]domain.Ranking, 0)
	for _, row := range m.Rows {
		if year != nil && row.Year != *year {
			continue
		}
		if country != "" && row.Factors.Country != country {
			continue
		}
		results = append(results, domain.Ranking{
			Rank:    row.Factors.Rank,
			Country: row.Factors.Country,
			Score:   row.Factors.Score,
			Year:    row.Year,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Year != results[j].Year {
			return results[i].Year > results[j].Year
		}
		return results[i].Rank < results[j].Rank
	})
	return results, nil
}

// Countries implements the RankingStore interface
func (m *MockRankingStore) Countries(ctx context.Context) ([]string, error) {
	if m.CountriesFn != nil {
		return m.CountriesFn(ctx)
	}

	if m.QueryErr != nil {
		return nil, m.QueryErr
	}

	seen := make(map[string]bool)
	countries := make([]string, 0)
	for _, row := range m.Rows {
		if !seen[row.Factors.Country] {
			seen[row.Factors.Country] = true
			countries = append(countries, row.Factors.Country)
		}
	}
	sort.Strings(countries)
	return countries, nil
}
