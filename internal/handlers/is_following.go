package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=is_following.go -destination=mock_is_following.go -package=handlers

// FollowChecker reports follow edges.
type FollowChecker interface {
	IsFollowing(ctx context.Context, followerID, userID int64) (bool, error)
}

// IsFollowingResponse reports whether the current user follows another one
// swagger:model IsFollowingResponse
type IsFollowingResponse struct {
	IsFollowing bool `json:"isFollowing"`
}

// NewIsFollowingHandler returns an HTTP handler for the follow status.
// @Summary Follow status
// @Description Reports whether the current user follows the given user
// @Tags users
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} handlers.IsFollowingResponse "Follow status"
// @Failure 400 {object} handlers.MessageResponse "Invalid id"
// @Failure 401 {object} handlers.MessageResponse "Authentication token required"
// @Failure 403 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /users/{userId}/is-following [get]
// @Security BearerAuth
func NewIsFollowingHandler(svc FollowChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followerID, err := currentUserID(r)
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		userID, err := pathID(r, "userId")
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		following, err := svc.IsFollowing(r.Context(), followerID, userID)
		if err != nil {
			writeError(w, r, err, "Server error checking follow status.")
			return
		}

		writeJSON(w, http.StatusOK, IsFollowingResponse{IsFollowing: following})
	}
}
