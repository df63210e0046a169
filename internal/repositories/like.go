package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/models"
)

// LikeReadRepository handles like read operations. Queries join the
// request transaction when txGetter finds one.
type LikeReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLikeReadRepository(db *sqlx.DB, txGetter TxGetter) *LikeReadRepository {
	return &LikeReadRepository{db: db, txGetter: txGetter}
}

// Get returns the like of userID on postID, or nil when there is none.
func (r *LikeReadRepository) Get(ctx context.Context, postID, userID int64) (*models.LikeDB, error) {
	const query = `
		SELECT id, post_id, user_id, created_at
		FROM likes
		WHERE post_id = $1 AND user_id = $2
	`

	var like models.LikeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &like, query, postID, userID)
	logQuery(query, []any{postID, userID}, like.LikeID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// CountByPost returns the number of likes on a post.
func (r *LikeReadRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	var count int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, postID)
	logQuery(query, []any{postID}, count, err)

	return count, err
}

// LikeWriteRepository handles like write operations
type LikeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLikeWriteRepository(db *sqlx.DB, txGetter TxGetter) *LikeWriteRepository {
	return &LikeWriteRepository{db: db, txGetter: txGetter}
}

// Save records that userID likes postID.
func (r *LikeWriteRepository) Save(ctx context.Context, postID, userID int64) error {
	const query = `INSERT INTO likes (post_id, user_id) VALUES ($1, $2)`
	args := []any{postID, userID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return translateError(err)
}

// Delete removes the like of userID on postID.
func (r *LikeWriteRepository) Delete(ctx context.Context, postID, userID int64) error {
	const query = `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`
	args := []any{postID, userID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}
