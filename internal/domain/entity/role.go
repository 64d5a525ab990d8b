package entity

import "strings"

// Role is the closed, ordered set of user roles.
type Role int

const (
	RoleUser Role = iota
	RoleManager
	RoleAdmin
)

var roleNames = [...]string{
	RoleUser:    "User",
	RoleManager: "Manager",
	RoleAdmin:   "Admin",
}

// Roles returns every role in declaration order.
func Roles() []Role {
	return []Role{RoleUser, RoleManager, RoleAdmin}
}

func (r Role) String() string {
	if r < RoleUser || r > RoleAdmin {
		return "Unknown"
	}
	return roleNames[r]
}

// ParseRole maps a display name (case-insensitive) to its Role.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range Roles() {
		if strings.EqualFold(roleNames[r], s) {
			return r, true
		}
	}
	return RoleUser, false
}

// RoleFromString is ParseRole with the default role for absent or unknown
// names. Only adapters use it; the entity never guesses a role.
func RoleFromString(s string) Role {
	r, _ := ParseRole(s)
	return r
}
