package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common profile validation errors
var (
	ErrEmptyProfileOwner = errors.New("profile owner cannot be empty")
	ErrFutureDateOfBirth = errors.New("date of birth must be in the past")
)

// DateLayout is the canonical wire representation of a calendar date.
const DateLayout = "2006-01-02"

// Profile holds the personal details attached to a User. At most one
// Profile exists per User; writes replace all four fields at once.
type Profile struct {
	UserID    uuid.UUID `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	DOB       time.Time `json:"dob"`
	Address   string    `json:"address"`
}

// NewProfile creates a Profile owned by the given user.
// Returns an error if validation fails.
func NewProfile(userID uuid.UUID, firstName, lastName string, dob time.Time, address string) (*Profile, error) {
	p := &Profile{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		DOB:       dob,
		Address:   address,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProfileOwner
	}
	if p.DOB.After(time.Now()) {
		return ErrFutureDateOfBirth
	}
	return nil
}
