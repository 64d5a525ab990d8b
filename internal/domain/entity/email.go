package entity

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`(?i)^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a validated, normalized (trimmed, lower-cased) email address.
// Two Emails are equal when their normalized values are equal, so the type
// can be compared with ==.
type Email struct {
	value string
}

// NewEmail validates raw and returns its normalized form.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, fmt.Errorf("%w: email can't be empty", ErrInvalidValue)
	}
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(normalized) {
		return Email{}, fmt.Errorf("%w: email %q is invalid", ErrInvalidValue, normalized)
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }
