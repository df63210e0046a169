package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/models"
)

// CommentWriteRepository handles comment write operations
type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save inserts a comment and returns its id. The post is not looked up
// first; a missing post fails on the foreign key.
func (r *CommentWriteRepository) Save(ctx context.Context, postID, userID int64, content string) (int64, error) {
	const query = `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	args := []any{postID, userID, content}

	var commentID int64
	err := r.db.GetContext(ctx, &commentID, query, args...)
	logQuery(query, args, commentID, err)

	if err != nil {
		return 0, translateError(err)
	}
	return commentID, nil
}

// CommentReadRepository handles comment read operations
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByPost returns the comments of a post, oldest first.
func (r *CommentReadRepository) ListByPost(ctx context.Context, postID int64) ([]models.CommentDB, error) {
	const query = `
		SELECT c.id, c.post_id, c.user_id, c.content, c.created_at,
		       u.username, u.profile_picture_url
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`

	comments := []models.CommentDB{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	logQuery(query, []any{postID}, len(comments), err)

	if err != nil {
		return nil, err
	}
	return comments, nil
}
