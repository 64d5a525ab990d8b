package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MinNameLength = 3
	MaxNameLength = 100
)

// now is swapped in tests that need deterministic timestamps.
var now = func() time.Time { return time.Now().UTC() }

// User is the aggregate root for the user domain.
// Fields are only reachable through accessors; state changes go through
// Rename, ChangeRole, Activate and Deactivate.
type User struct {
	id        string
	email     Email
	name      string
	role      Role
	isActive  bool
	createdAt time.Time
	updatedAt *time.Time
}

// NewUser creates a brand new, active user with a fresh id.
func NewUser(email Email, name string, role Role) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &User{
		id:        uuid.NewString(),
		email:     email,
		name:      strings.TrimSpace(name),
		role:      role,
		isActive:  true,
		createdAt: now(),
	}, nil
}

// ReconstructUser rehydrates a user from a trusted persisted record.
// Nothing is validated here.
func ReconstructUser(id string, email Email, name string, role Role, isActive bool, createdAt time.Time, updatedAt *time.Time) *User {
	u := &User{
		id:        id,
		email:     email,
		name:      name,
		role:      role,
		isActive:  isActive,
		createdAt: createdAt,
	}
	if updatedAt != nil {
		t := *updatedAt
		u.updatedAt = &t
	}
	return u
}

func (u *User) ID() string           { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt reports the last mutation time; ok is false for a user that was
// never mutated.
func (u *User) UpdatedAt() (t time.Time, ok bool) {
	if u.updatedAt == nil {
		return time.Time{}, false
	}
	return *u.updatedAt, true
}

func (u *User) Rename(newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}
	u.name = strings.TrimSpace(newName)
	u.touch()
	return nil
}

func (u *User) ChangeRole(newRole Role) error {
	if u.role == newRole {
		return fmt.Errorf("%w: the user is already %s", ErrNoOpTransition, newRole)
	}
	u.role = newRole
	u.touch()
	return nil
}

func (u *User) Activate() error {
	if u.isActive {
		return fmt.Errorf("%w: the user is already active", ErrNoOpTransition)
	}
	u.isActive = true
	u.touch()
	return nil
}

func (u *User) Deactivate() error {
	if !u.isActive {
		return fmt.Errorf("%w: the user is already inactive", ErrNoOpTransition)
	}
	u.isActive = false
	u.touch()
	return nil
}

func (u *User) touch() {
	t := now()
	u.updatedAt = &t
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name can't be empty", ErrInvalidValue)
	}
	n := utf8.RuneCountInString(trimmed)
	if n < MinNameLength {
		return fmt.Errorf("%w: name can't be less than %d characters", ErrInvalidValue, MinNameLength)
	}
	if n > MaxNameLength {
		return fmt.Errorf("%w: name can't be more than %d characters", ErrInvalidValue, MaxNameLength)
	}
	return nil
}
