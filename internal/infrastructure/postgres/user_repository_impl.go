package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	"github.com/oksasatya/nexus-admin/internal/domain/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	email      TEXT NOT NULL,
	name       TEXT NOT NULL,
	role       TEXT NOT NULL,
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique ON users (email);
CREATE INDEX IF NOT EXISTS users_created_at_desc ON users (created_at DESC, id DESC);
`

const selectColumns = `id, email, name, role, is_active, created_at, updated_at`

// Queryer is satisfied by *pgxpool.Pool and pgx.Tx.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type UserRepository struct {
	pool   Queryer
	logger *logrus.Logger
}

// NewUserRepository binds the repository to the pool and bootstraps the
// users table and its unique email index when they are missing.
func NewUserRepository(ctx context.Context, pool Queryer, logger *logrus.Logger) (*UserRepository, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure users schema: %w", err)
	}
	return &UserRepository{pool: pool, logger: logger}, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := toRow(u)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, row.ID, row.Email, row.Name, row.Role, row.IsActive, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email %q", entity.ErrAlreadyExists, row.Email)
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := r.queryOne(ctx, `SELECT `+selectColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, id)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	return r.queryOne(ctx, `SELECT `+selectColumns+` FROM users WHERE email = $1`, email.String())
}

func (r *UserRepository) ListPage(ctx context.Context, page, pageSize int) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+selectColumns+`
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0, pageSize)
	for rows.Next() {
		u, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := toRow(u)
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $2, name = $3, role = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`, row.ID, row.Email, row.Name, row.Role, row.IsActive, row.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email %q", entity.ErrAlreadyExists, row.Email)
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, row.ID)
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", entity.ErrNotFound, id)
	}
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email entity.Email) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email.String()).Scan(&exists)
	return exists, err
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// queryOne returns (nil, nil) when no row matches.
func (r *UserRepository) queryOne(ctx context.Context, sql string, args ...any) (*entity.User, error) {
	u, err := r.scan(r.pool.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *UserRepository) scan(s pgx.Row) (*entity.User, error) {
	var row userRow
	if err := s.Scan(&row.ID, &row.Email, &row.Name, &row.Role, &row.IsActive, &row.CreatedAt, &row.UpdatedAt); err != nil {
		return nil, err
	}
	u, unknownRole, err := toDomain(row)
	if err != nil {
		return nil, err
	}
	if unknownRole && r.logger != nil {
		r.logger.WithFields(logrus.Fields{"user_id": row.ID, "role": row.Role}).Warn("unknown role in storage; defaulting to User")
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
