package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
)

var columns = []string{"id", "email", "name", "role", "is_active", "created_at", "updated_at"}

func newRepo(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface, *test.Hook) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger, hook := test.NewNullLogger()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	repo, err := NewUserRepository(context.Background(), mock, logger)
	require.NoError(t, err)
	return repo, mock, hook
}

func newEntity(t *testing.T, email string) *entity.User {
	t.Helper()
	e, err := entity.NewEmail(email)
	require.NoError(t, err)
	u, err := entity.NewUser(e, "Alice Doe", entity.RoleUser)
	require.NoError(t, err)
	return u
}

func TestNewUserRepositorySchemaFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).WillReturnError(errors.New("permission denied"))

	_, err = NewUserRepository(context.Background(), mock, nil)
	assert.ErrorContains(t, err, "ensure users schema")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock, _ := newRepo(t)
	u := newEntity(t, "alice@example.com")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(u.ID(), "alice@example.com", "Alice Doe", "User", true, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Same(t, u, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo, mock, _ := newRepo(t)
	u := newEntity(t, "alice@example.com")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), u)
	assert.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestGetByID(t *testing.T) {
	repo, mock, _ := newRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("u-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow("u-1", "a@b.com", "Alice Doe", "Manager", false, created, &updated))

	u, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID())
	assert.Equal(t, entity.RoleManager, u.Role())
	assert.False(t, u.IsActive())
	got, ok := u.UpdatedAt()
	require.True(t, ok)
	assert.True(t, got.Equal(updated))
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetByEmailAbsentIsNil(t *testing.T) {
	repo, mock, _ := newRepo(t)
	email, _ := entity.NewEmail("nobody@example.com")

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.GetByEmail(context.Background(), email)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestListPageLogsUnknownRoles(t *testing.T) {
	repo, mock, hook := newRepo(t)
	now := time.Now().UTC()
	var never *time.Time

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WithArgs(2, 2).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("u-3", "c@b.com", "Carol Doe", "Admin", true, now, never).
			AddRow("u-2", "b@b.com", "Bob Doe", "Janitor", true, now.Add(-time.Minute), never))

	users, err := repo.ListPage(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u-3", users[0].ID())
	assert.Equal(t, entity.RoleUser, users[1].Role())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Janitor", hook.LastEntry().Data["role"])
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	repo, mock, _ := newRepo(t)
	u := newEntity(t, "alice@example.com")

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	_, err := repo.Update(context.Background(), u)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), entity.ErrNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs(u.ID()).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), u.ID()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsAndCount(t *testing.T) {
	repo, mock, _ := newRepo(t)
	email, _ := entity.NewEmail("alice@example.com")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))

	exists, err := repo.ExistsByEmail(context.Background(), email)
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
