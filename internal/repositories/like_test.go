package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeReadRepository_Get(t *testing.T) {
	columns := []string{"id", "post_id", "user_id", "created_at"}

	t.Run("liked", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLikeReadRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM likes WHERE post_id = $1 AND user_id = $2")).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(9, 1, 2, time.Now()))

		like, err := repo.Get(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(9), like.LikeID)
	})

	t.Run("not liked", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLikeReadRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM likes")).WillReturnRows(sqlmock.NewRows(columns))

		like, err := repo.Get(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Nil(t, like)
	})
}

func TestLikeReadRepository_CountByPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM likes WHERE post_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByPost(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestLikeWriteRepository_UsesRequestTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO likes (post_id, user_id) VALUES ($1, $2)")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM likes WHERE post_id = $1 AND user_id = $2")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := NewLikeWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	ctx := context.Background()
	assert.NoError(t, repo.Save(ctx, 1, 2))
	assert.NoError(t, repo.Delete(ctx, 1, 2))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
