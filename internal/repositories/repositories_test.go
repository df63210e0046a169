package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTranslateError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	foreignKey := &pgconn.PgError{Code: "23503", ConstraintName: "comments_post_id_fkey"}
	plain := errors.New("connection reset")

	assert.NoError(t, translateError(nil))

	err := translateError(unique)
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "users_username_key")

	assert.Equal(t, foreignKey, translateError(foreignKey))
	assert.Equal(t, plain, translateError(plain))
}

func TestExecutor(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	assert.Equal(t, db, executor(ctx, db, nil))
	assert.Equal(t, db, executor(ctx, db, func(context.Context) *sqlx.Tx { return nil }))

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	assert.Equal(t, tx, executor(ctx, db, func(context.Context) *sqlx.Tx { return tx }))
}
