package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=comment.go -destination=mock_comment.go -package=handlers

// Commenter stores comments.
type Commenter interface {
	AddComment(ctx context.Context, postID, userID int64, content string) (int64, error)
}

// CommentRequest represents the JSON body for a new comment
// swagger:model CommentRequest
type CommentRequest struct {
	// Comment text
	// required: true
	// default: nice post
	Content string `json:"content"`
}

// CommentResponse represents a created comment
// swagger:model CommentResponse
type CommentResponse struct {
	// Success message
	// default: Comment added successfully!
	Message string `json:"message"`

	CommentID int64 `json:"commentId"`
}

// NewCommentHandler returns an HTTP handler that comments a post as the current user.
// @Summary Comment post
// @Tags posts
// @Accept json
// @Produce json
// @Param postId path int true "Post id"
// @Param commentRequest body handlers.CommentRequest true "Comment"
// @Success 201 {object} handlers.CommentResponse "Comment added"
// @Failure 400 {object} handlers.MessageResponse "Empty content, invalid id or invalid body"
// @Failure 401 {object} handlers.MessageResponse "Authentication token required"
// @Failure 403 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /posts/{postId}/comments [post]
// @Security BearerAuth
func NewCommentHandler(svc Commenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		postID, err := pathID(r, "postId")
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		var req CommentRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, "")
			return
		}

		commentID, err := svc.AddComment(r.Context(), postID, userID, req.Content)
		if err != nil {
			writeError(w, r, err, "Server error adding comment.")
			return
		}

		writeJSON(w, http.StatusCreated, CommentResponse{
			Message:   "Comment added successfully!",
			CommentID: commentID,
		})
	}
}
