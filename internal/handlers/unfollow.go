package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=unfollow.go -destination=mock_unfollow.go -package=handlers

// Unfollower removes follow edges.
type Unfollower interface {
	Unfollow(ctx context.Context, followerID, followedID int64) error
}

// NewUnfollowHandler returns an HTTP handler that removes a follow edge of the current user.
// @Summary Unfollow a user
// @Tags users
// @Produce json
// @Param followedId path int true "Id of the followed user"
// @Success 200 {object} handlers.MessageResponse "User unfollowed"
// @Failure 400 {object} handlers.MessageResponse "Invalid id"
// @Failure 401 {object} handlers.MessageResponse "Authentication token required"
// @Failure 403 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 404 {object} handlers.MessageResponse "Follow relationship not found"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /users/{followedId}/unfollow [delete]
// @Security BearerAuth
func NewUnfollowHandler(svc Unfollower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followerID, err := currentUserID(r)
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		followedID, err := pathID(r, "followedId")
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		if err := svc.Unfollow(r.Context(), followerID, followedID); err != nil {
			writeError(w, r, err, "Server error during unfollow operation.")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User unfollowed successfully."})
	}
}
