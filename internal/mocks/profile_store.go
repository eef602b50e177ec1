package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/worldhappiness/api/internal/domain"
	"github.com/worldhappiness/api/internal/store"
)

// MockProfileStore implements store.ProfileStore for testing
type MockProfileStore struct {
	// Function fields for customizable behavior
	GetByEmailFn func(ctx context.Context, email string) (*store.ProfileRecord, error)
	UpsertFn     func(ctx context.Context, profile *domain.Profile) error

	// Data for default implementation. Records is keyed by email,
	// Profiles by owning user ID.
	Records     map[string]*store.ProfileRecord
	Profiles    map[uuid.UUID]*domain.Profile
	UpsertError error
}

// NewMockProfileStore creates a new mock store with initialized defaults
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{
		Records:  make(map[string]*store.ProfileRecord),
		Profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

// Ensure MockProfileStore implements store.ProfileStore
var _ store.ProfileStore = (*MockProfileStore)(nil)

// GetByEmail implements the ProfileStore interface
func (m *MockProfileStore) GetByEmail(ctx context.Context, email string) (*store.ProfileRecord, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	record, exists := m.Records[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return record, nil
}

// Upsert implements the ProfileStore interface
func (m *MockProfileStore) Upsert(ctx context.Context, profile *domain.Profile) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, profile)
	}

	if m.UpsertError != nil {
		return m.UpsertError
	}

	m.Profiles[profile.UserID] = profile
	return nil
}
