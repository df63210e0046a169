package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=handlers

// ProfileGetter loads a user profile with its counters.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
}

// NewGetProfileHandler returns an HTTP handler for user profiles.
// @Summary Get user profile
// @Description Returns the public profile of a user with post, follower and following counts
// @Tags users
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} models.Profile "User profile"
// @Failure 400 {object} handlers.MessageResponse "Invalid id"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /users/{userId} [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "userId")
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			writeError(w, r, err, "Server error fetching user profile.")
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
