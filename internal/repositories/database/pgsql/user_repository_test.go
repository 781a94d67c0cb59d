package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/mwalto7/filevault/internal/apperrors"
	"github.com/mwalto7/filevault/internal/core/domain"
)

func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

func TestUserRepository_SaveUser(t *testing.T) {
	mock := newMockDB(t)
	defer mock.Close()
	r := NewPgxUserRepository(mock)
	ctx := context.Background()

	user := domain.User{
		ID:           "user@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.PasswordHash, user.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.SaveUser(ctx, user))

	// A second insert with the same identifier violates the primary key.
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.PasswordHash, user.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.SaveUser(ctx, user)
	require.ErrorIs(t, err, apperrors.ErrDuplicate)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByID(t *testing.T) {
	mock := newMockDB(t)
	defer mock.Close()
	r := NewPgxUserRepository(mock)
	ctx := context.Background()
	createdAt := time.Now()

	mock.ExpectQuery(`SELECT user_id, password_hash, created_at`).
		WithArgs("user@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "password_hash", "created_at"}).
			AddRow("user@example.com", "$2a$10$hash", createdAt))

	user, err := r.FindUserByID(ctx, "user@example.com")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", user.ID)
	require.Equal(t, "$2a$10$hash", user.PasswordHash)

	mock.ExpectQuery(`SELECT user_id, password_hash, created_at`).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	user, err = r.FindUserByID(ctx, "ghost@example.com")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Nil(t, user)

	require.NoError(t, mock.ExpectationsWereMet())
}
