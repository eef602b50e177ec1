package store

import (
	"context"
	"time"

	"github.com/worldhappiness/api/internal/domain"
)

// ProfileRecord is the joined user/profile projection returned by
// profile reads. Pointer fields are nil when the user has no profile
// row yet, which serializes as JSON null.
type ProfileRecord struct {
	Email     string
	FirstName *string
	LastName  *string
	DOB       *time.Time
	Address   *string
}

// ProfileStore defines the interface for profile persistence.
type ProfileStore interface {
	// GetByEmail retrieves the profile projection for the given email,
	// joining against the user row so a user without a profile still
	// yields a record (with nil detail fields).
	// Returns ErrUserNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*ProfileRecord, error)

	// Upsert inserts the profile, or overwrites all four detail fields
	// when a profile already exists for the owning user. The operation
	// is a single atomic statement keyed on the owner.
	Upsert(ctx context.Context, profile *domain.Profile) error
}
