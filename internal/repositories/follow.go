package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/models"
)

// FollowReadRepository handles follower edge reads
type FollowReadRepository struct {
	db *sqlx.DB
}

func NewFollowReadRepository(db *sqlx.DB) *FollowReadRepository {
	return &FollowReadRepository{db: db}
}

// Get returns the edge followerID -> followedID, or nil when absent.
func (r *FollowReadRepository) Get(ctx context.Context, followerID, followedID int64) (*models.FollowDB, error) {
	const query = `
		SELECT id, follower_id, followed_id, created_at
		FROM followers
		WHERE follower_id = $1 AND followed_id = $2
	`

	var edge models.FollowDB
	err := r.db.GetContext(ctx, &edge, query, followerID, followedID)
	logQuery(query, []any{followerID, followedID}, edge.FollowID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// CountFollowers returns how many users follow userID.
func (r *FollowReadRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM followers WHERE followed_id = $1`
	return r.count(ctx, query, userID)
}

// CountFollowing returns how many users userID follows.
func (r *FollowReadRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM followers WHERE follower_id = $1`
	return r.count(ctx, query, userID)
}

func (r *FollowReadRepository) count(ctx context.Context, query string, userID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)
	logQuery(query, []any{userID}, count, err)
	return count, err
}

// FollowWriteRepository handles follower edge writes
type FollowWriteRepository struct {
	db *sqlx.DB
}

func NewFollowWriteRepository(db *sqlx.DB) *FollowWriteRepository {
	return &FollowWriteRepository{db: db}
}

// Save inserts the edge followerID -> followedID. An existing edge yields
// ErrUniqueViolation.
func (r *FollowWriteRepository) Save(ctx context.Context, followerID, followedID int64) error {
	const query = `INSERT INTO followers (follower_id, followed_id) VALUES ($1, $2)`
	args := []any{followerID, followedID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return translateError(err)
}

// Delete removes the edge and reports whether it existed.
func (r *FollowWriteRepository) Delete(ctx context.Context, followerID, followedID int64) (bool, error) {
	const query = `DELETE FROM followers WHERE follower_id = $1 AND followed_id = $2`
	args := []any{followerID, followedID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
