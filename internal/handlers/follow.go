package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-social/internal/apperrors"
)

//go:generate mockgen -source=follow.go -destination=mock_follow.go -package=handlers

var errFollowedIDRequired = apperrors.New(apperrors.ErrValidation, "A valid followedId is required.")

// Follower adds follow edges.
type Follower interface {
	Follow(ctx context.Context, followerID, followedID int64) error
}

// UserID is a user id that decodes from a JSON number or a numeric string.
type UserID int64

// UnmarshalJSON accepts 2 and "2".
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = UserID(v)
	return nil
}

// FollowRequest represents the JSON body for following a user
// swagger:model FollowRequest
type FollowRequest struct {
	// Id of the user to follow, as a number or a numeric string
	// required: true
	// default: 2
	FollowedID UserID `json:"followedId" swaggertype:"integer"`
}

// NewFollowHandler returns an HTTP handler that makes the current user follow another one.
// @Summary Follow a user
// @Tags users
// @Accept json
// @Produce json
// @Param followRequest body handlers.FollowRequest true "User to follow"
// @Success 200 {object} handlers.MessageResponse "User followed"
// @Failure 400 {object} handlers.MessageResponse "Self follow or invalid body"
// @Failure 401 {object} handlers.MessageResponse "Authentication token required"
// @Failure 403 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 409 {object} handlers.MessageResponse "Already following"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /users/follow [post]
// @Security BearerAuth
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followerID, err := currentUserID(r)
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		var req FollowRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, "")
			return
		}
		if req.FollowedID <= 0 {
			writeError(w, r, errFollowedIDRequired, "")
			return
		}

		if err := svc.Follow(r.Context(), followerID, int64(req.FollowedID)); err != nil {
			writeError(w, r, err, "Server error during follow operation.")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User followed successfully."})
	}
}
