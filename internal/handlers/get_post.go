package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=get_post.go -destination=mock_get_post.go -package=handlers

// PostGetter loads a single post.
type PostGetter interface {
	GetPost(ctx context.Context, postID int64) (*models.PostDetail, error)
}

// NewGetPostHandler returns an HTTP handler for a post with its comments.
// @Summary Get post
// @Description Returns a post with its comments, oldest first, and its like count
// @Tags posts
// @Produce json
// @Param postId path int true "Post id"
// @Success 200 {object} models.PostDetail "Post"
// @Failure 400 {object} handlers.MessageResponse "Invalid id"
// @Failure 401 {object} handlers.MessageResponse "Authentication token required"
// @Failure 403 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 404 {object} handlers.MessageResponse "Post not found"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /posts/{postId} [get]
// @Security BearerAuth
func NewGetPostHandler(svc PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "postId")
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		post, err := svc.GetPost(r.Context(), postID)
		if err != nil {
			writeError(w, r, err, "Server error fetching post.")
			return
		}
		if post.Comments == nil {
			post.Comments = []models.CommentDB{}
		}

		writeJSON(w, http.StatusOK, post)
	}
}
