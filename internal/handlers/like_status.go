package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=like_status.go -destination=mock_like_status.go -package=handlers

// LikeChecker reports whether a user likes a post.
type LikeChecker interface {
	IsLiked(ctx context.Context, postID, userID int64) (bool, error)
}

// LikeStatusResponse represents the like state of the current user
// swagger:model LikeStatusResponse
type LikeStatusResponse struct {
	Liked bool `json:"liked"`
}

// NewLikeStatusHandler returns an HTTP handler for the like state of the current user.
// @Summary Like status
// @Tags posts
// @Produce json
// @Param postId path int true "Post id"
// @Success 200 {object} handlers.LikeStatusResponse "Like state"
// @Failure 400 {object} handlers.MessageResponse "Invalid id"
// @Failure 401 {object} handlers.MessageResponse "Authentication token required"
// @Failure 403 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /posts/{postId}/like-status [get]
// @Security BearerAuth
func NewLikeStatusHandler(svc LikeChecker) http.HandlerFunc {
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

		liked, err := svc.IsLiked(r.Context(), postID, userID)
		if err != nil {
			writeError(w, r, err, "Server error checking like status.")
			return
		}

		writeJSON(w, http.StatusOK, LikeStatusResponse{Liked: liked})
	}
}
