package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/worldhappiness/api/internal/domain"
	"github.com/worldhappiness/api/internal/store"
)

// ProfileStore implements the store.ProfileStore interface using a
// PostgreSQL database as the storage backend.
type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore creates a new PostgreSQL implementation of the
// store.ProfileStore interface.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Ensure ProfileStore implements store.ProfileStore
var _ store.ProfileStore = (*ProfileStore)(nil)

// GetByEmail implements store.ProfileStore.GetByEmail. The left join
// keeps users without a profile row visible; their detail fields come
// back as NULLs.
func (s *ProfileStore) GetByEmail(ctx context.Context, email string) (*store.ProfileRecord, error) {
	var record store.ProfileRecord

	err := s.db.QueryRowContext(ctx,
		`SELECT u.email, p.first_name, p.last_name, p.dob, p.address
		 FROM users u
		 LEFT JOIN profiles p ON p.user_id = u.id
		 WHERE u.email = $1`,
		email).Scan(&record.Email, &record.FirstName, &record.LastName, &record.DOB, &record.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return &record, nil
}

// Upsert implements store.ProfileStore.Upsert as a single
// insert-with-merge-on-conflict statement keyed on the owning user.
func (s *ProfileStore) Upsert(ctx context.Context, profile *domain.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, first_name, last_name, dob, address)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET first_name = EXCLUDED.first_name,
		     last_name  = EXCLUDED.last_name,
		     dob        = EXCLUDED.dob,
		     address    = EXCLUDED.address`,
		profile.UserID, profile.FirstName, profile.LastName, profile.DOB, profile.Address)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
