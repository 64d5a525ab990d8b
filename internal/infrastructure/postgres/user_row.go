package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
)

const uniqueViolation = "23505"

var errCorruptRow = errors.New("corrupt user row")

// userRow mirrors one row of the users table.
type userRow struct {
	ID        string
	Email     string
	Name      string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func toRow(u *entity.User) userRow {
	row := userRow{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
	if t, ok := u.UpdatedAt(); ok {
		row.UpdatedAt = &t
	}
	return row
}

// toDomain rebuilds a user; unknownRole reports a role string that fell back to User.
func toDomain(row userRow) (u *entity.User, unknownRole bool, err error) {
	email, err := entity.NewEmail(row.Email)
	if err != nil {
		return nil, false, fmt.Errorf("%w: id %s: %v", errCorruptRow, row.ID, err)
	}
	role, ok := entity.ParseRole(row.Role)
	return entity.ReconstructUser(row.ID, email, row.Name, role, row.IsActive, row.CreatedAt.UTC(), utcPtr(row.UpdatedAt)), !ok, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
