package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/worldhappiness/api/internal/domain"
	"github.com/worldhappiness/api/internal/store"
)

// RankingStore implements the store.RankingStore interface using a
// PostgreSQL database as the storage backend. The ranking data is
// read-only reference data; nothing here mutates it.
type RankingStore struct {
	db *sql.DB
}

// NewRankingStore creates a new PostgreSQL implementation of the
// store.RankingStore interface.
func NewRankingStore(db *sql.DB) *RankingStore {
	return &RankingStore{db: db}
}

// Ensure RankingStore implements store.RankingStore
var _ store.RankingStore = (*RankingStore)(nil)

// FactorsByYear implements store.RankingStore.FactorsByYear
func (s *RankingStore) FactorsByYear(ctx context.Context, year int, country string, limit int) ([]domain.Factors, error) {
	var sb strings.Builder
	sb.WriteString(
		`SELECT rank, country, score, economy, family, health, freedom, generosity, trust
		 FROM rankings
		 WHERE year = $1`)

	args := []any{year}
	if country != "" {
		args = append(args, country)
		sb.WriteString(" AND country = $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY rank ASC")
	if limit > 0 {
		args = append(args, limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query factors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := make([]domain.Factors, 0)
	for rows.Next() {
		var f domain.Factors
		if err := rows.Scan(&f.Rank, &f.Country, &f.Score, &f.Economy,
			&f.Family, &f.Health, &f.Freedom, &f.Generosity, &f.Trust); err != nil {
			return nil, fmt.Errorf("failed to scan factors row: %w", err)
		}
		results = append(results, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate factors rows: %w", err)
	}

	return results, nil
}

// Rankings implements store.RankingStore.Rankings
func (s *RankingStore) Rankings(ctx context.Context, year *int, country string) ([]domain.Ranking, error) {
	var sb strings.Builder
	sb.WriteString(
		`SELECT rank, country, score, year
		 FROM rankings
		 WHERE TRUE`)

	args := []any{}
	if year != nil {
		args = append(args, *year)
		sb.WriteString(" AND year = $" + strconv.Itoa(len(args)))
	}
	if country != "" {
		args = append(args, country)
		sb.WriteString(" AND country = $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY year DESC, rank ASC")

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rankings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := make([]domain.Ranking, 0)
	for rows.Next() {
		var rk domain.Ranking
		if err := rows.Scan(&rk.Rank, &rk.Country, &rk.Score, &rk.Year); err != nil {
			return nil, fmt.Errorf("failed to scan ranking row: %w", err)
		}
		results = append(results, rk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ranking rows: %w", err)
	}

	return results, nil
}

// Countries implements store.RankingStore.Countries
func (s *RankingStore) Countries(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT country FROM rankings ORDER BY country ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	countries := make([]string, 0)
	for rows.Next() {
		var country string
		if err := rows.Scan(&country); err != nil {
			return nil, fmt.Errorf("failed to scan country row: %w", err)
		}
		countries = append(countries, country)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate country rows: %w", err)
	}

	return countries, nil
}
