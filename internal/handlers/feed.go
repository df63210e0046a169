package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=feed.go -destination=mock_feed.go -package=handlers

// FeedGetter lists the newest posts.
type FeedGetter interface {
	GetFeed(ctx context.Context) ([]models.FeedPostDB, error)
}

// NewFeedHandler returns an HTTP handler for the global feed.
// @Summary Feed
// @Description Returns the newest posts of all users with comment and like counts
// @Tags posts
// @Produce json
// @Success 200 {array} models.FeedPostDB "Posts, newest first"
// @Failure 401 {object} handlers.MessageResponse "Authentication token required"
// @Failure 403 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /posts/feed [get]
// @Security BearerAuth
func NewFeedHandler(svc FeedGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.GetFeed(r.Context())
		if err != nil {
			writeError(w, r, err, "Server error fetching feed.")
			return
		}
		if posts == nil {
			posts = []models.FeedPostDB{}
		}

		writeJSON(w, http.StatusOK, posts)
	}
}
