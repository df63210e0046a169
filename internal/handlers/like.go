package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=like.go -destination=mock_like.go -package=handlers

// LikeToggler flips the like of a user on a post.
type LikeToggler interface {
	ToggleLike(ctx context.Context, postID, userID int64) (bool, error)
}

// LikeResponse represents the like state after a toggle
// swagger:model LikeResponse
type LikeResponse struct {
	// Success message
	// default: Post liked successfully.
	Message string `json:"message"`

	Liked bool `json:"liked"`
}

// NewLikeHandler returns an HTTP handler that toggles the like of the current user.
// @Summary Toggle like
// @Description Likes the post if the current user has not liked it yet, unlikes it otherwise
// @Tags posts
// @Produce json
// @Param postId path int true "Post id"
// @Success 200 {object} handlers.LikeResponse "New like state"
// @Failure 400 {object} handlers.MessageResponse "Invalid id"
// @Failure 401 {object} handlers.MessageResponse "Authentication token required"
// @Failure 403 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /posts/{postId}/like [post]
// @Security BearerAuth
func NewLikeHandler(svc LikeToggler) http.HandlerFunc {
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

		liked, err := svc.ToggleLike(r.Context(), postID, userID)
		if err != nil {
			writeError(w, r, err, "Server error toggling like.")
			return
		}

		message := "Post unliked successfully."
		if liked {
			message = "Post liked successfully."
		}
		writeJSON(w, http.StatusOK, LikeResponse{Message: message, Liked: liked})
	}
}
