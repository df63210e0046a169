package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/models"
)

// PostWriteRepository handles post write operations
type PostWriteRepository struct {
	db *sqlx.DB
}

func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

// Save inserts a post and returns its id.
func (r *PostWriteRepository) Save(ctx context.Context, userID int64, content string, imageURL *string) (int64, error) {
	const query = `
		INSERT INTO posts (user_id, content, image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	args := []any{userID, content, imageURL}

	var postID int64
	err := r.db.GetContext(ctx, &postID, query, args...)
	logQuery(query, args, postID, err)

	if err != nil {
		return 0, translateError(err)
	}
	return postID, nil
}

// PostReadRepository handles post read operations
type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// GetByID returns the post with its author, or nil when it does not exist.
func (r *PostReadRepository) GetByID(ctx context.Context, postID int64) (*models.PostDB, error) {
	const query = `
		SELECT p.id, p.user_id, p.content, p.image_url, p.created_at,
		       u.username, u.profile_picture_url
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`

	var post models.PostDB
	err := r.db.GetContext(ctx, &post, query, postID)
	logQuery(query, []any{postID}, post.PostID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns up to limit posts of all users, newest first, with comment
// and like counts.
func (r *PostReadRepository) List(ctx context.Context, limit int) ([]models.FeedPostDB, error) {
	const query = `
		SELECT p.id, p.user_id, p.content, p.image_url, p.created_at,
		       u.username, u.profile_picture_url,
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count,
		       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1
	`

	posts := []models.FeedPostDB{}
	err := r.db.SelectContext(ctx, &posts, query, limit)
	logQuery(query, []any{limit}, len(posts), err)

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByUser returns how many posts the user has written.
func (r *PostReadRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM posts WHERE user_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)
	logQuery(query, []any{userID}, count, err)

	return count, err
}
