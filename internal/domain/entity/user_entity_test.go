package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, raw string) Email {
	t.Helper()
	e, err := NewEmail(raw)
	require.NoError(t, err)
	return e
}

// freezeClock pins now() to start and returns a func advancing it by d.
func freezeClock(t *testing.T, start time.Time) func(d time.Duration) {
	t.Helper()
	current := start
	prev := now
	now = func() time.Time { return current }
	t.Cleanup(func() { now = prev })
	return func(d time.Duration) { current = current.Add(d) }
}

func TestNewUser(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	freezeClock(t, start)

	u, err := NewUser(mustEmail(t, "a@b.com"), "  Alice Doe  ", RoleAdmin)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID())
	assert.Equal(t, "a@b.com", u.Email().String())
	assert.Equal(t, "Alice Doe", u.Name())
	assert.Equal(t, RoleAdmin, u.Role())
	assert.True(t, u.IsActive())
	assert.Equal(t, start, u.CreatedAt())
	_, ok := u.UpdatedAt()
	assert.False(t, ok)

	other, err := NewUser(mustEmail(t, "c@d.com"), "Carol", RoleUser)
	require.NoError(t, err)
	assert.NotEqual(t, u.ID(), other.ID())
}

func TestNameLengthBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "exactly 3", in: "abc"},
		{name: "exactly 100", in: strings.Repeat("x", 100)},
		{name: "3 after trimming", in: "   abc   "},
		{name: "2", in: "ab", wantErr: true},
		{name: "101", in: strings.Repeat("x", 101), wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "all whitespace", in: "      ", wantErr: true},
		{name: "2 after trimming", in: "  ab  ", wantErr: true},
		{name: "multibyte 3", in: "Zoë"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(mustEmail(t, "a@b.com"), tt.in, RoleUser)
			u := ReconstructUser("id-1", mustEmail(t, "a@b.com"), "Original", RoleUser, true, time.Now(), nil)
			renameErr := u.Rename(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
				assert.ErrorIs(t, renameErr, ErrInvalidValue)
				assert.Equal(t, "Original", u.Name())
				_, ok := u.UpdatedAt()
				assert.False(t, ok)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, renameErr)
			assert.Equal(t, strings.TrimSpace(tt.in), u.Name())
		})
	}
}

func TestRenameStampsUpdatedAt(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	advance := freezeClock(t, start)

	u, err := NewUser(mustEmail(t, "a@b.com"), "Alice", RoleUser)
	require.NoError(t, err)

	advance(time.Minute)
	require.NoError(t, u.Rename("Alice Cooper"))

	updated, ok := u.UpdatedAt()
	require.True(t, ok)
	assert.Equal(t, start.Add(time.Minute), updated)
	assert.Equal(t, start, u.CreatedAt())
}

func TestChangeRole(t *testing.T) {
	for _, current := range Roles() {
		for _, target := range Roles() {
			u := ReconstructUser("id", mustEmail(t, "a@b.com"), "Alice", current, true, time.Now().UTC(), nil)
			err := u.ChangeRole(target)
			_, stamped := u.UpdatedAt()
			if current == target {
				assert.ErrorIs(t, err, ErrNoOpTransition)
				assert.False(t, stamped)
				continue
			}
			assert.NoError(t, err)
			assert.Equal(t, target, u.Role())
			assert.True(t, stamped)
		}
	}
}

func TestActivateDeactivate(t *testing.T) {
	u, err := NewUser(mustEmail(t, "a@b.com"), "Alice", RoleUser)
	require.NoError(t, err)

	assert.ErrorIs(t, u.Activate(), ErrNoOpTransition)
	_, ok := u.UpdatedAt()
	assert.False(t, ok)

	require.NoError(t, u.Deactivate())
	assert.False(t, u.IsActive())
	updated, ok := u.UpdatedAt()
	require.True(t, ok)
	assert.False(t, updated.Before(u.CreatedAt()))

	assert.ErrorIs(t, u.Deactivate(), ErrNoOpTransition)

	require.NoError(t, u.Activate())
	assert.True(t, u.IsActive())
}

func TestReconstructUserDoesNotValidate(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	u := ReconstructUser("legacy-id", mustEmail(t, "x@y.io"), "X", RoleManager, false, created, &updated)

	assert.Equal(t, "legacy-id", u.ID())
	assert.Equal(t, "X", u.Name())
	assert.Equal(t, RoleManager, u.Role())
	assert.False(t, u.IsActive())
	assert.Equal(t, created, u.CreatedAt())
	got, ok := u.UpdatedAt()
	require.True(t, ok)
	assert.Equal(t, updated, got)

	// the caller's pointer is not shared with the entity
	updated = updated.Add(time.Hour)
	got, _ = u.UpdatedAt()
	assert.Equal(t, created.Add(time.Hour), got)
}
