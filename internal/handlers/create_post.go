package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=create_post.go -destination=mock_create_post.go -package=handlers

// PostCreator stores new posts.
type PostCreator interface {
	CreatePost(ctx context.Context, userID int64, content string, imageURL *string) (int64, error)
}

// CreatePostRequest represents the JSON body for a new post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Post text
	// required: true
	// default: hello
	Content string `json:"content"`

	// Optional image URL
	ImageURL *string `json:"imageUrl,omitempty"`
}

// CreatePostResponse represents a created post
// swagger:model CreatePostResponse
type CreatePostResponse struct {
	// Success message
	// default: Post created successfully!
	Message string `json:"message"`

	PostID int64 `json:"postId"`
}

// NewCreatePostHandler returns an HTTP handler that publishes a post of the current user.
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param createPostRequest body handlers.CreatePostRequest true "Post"
// @Success 201 {object} handlers.CreatePostResponse "Post created"
// @Failure 400 {object} handlers.MessageResponse "Empty content or invalid body"
// @Failure 401 {object} handlers.MessageResponse "Authentication token required"
// @Failure 403 {object} handlers.MessageResponse "Invalid or expired token"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /posts [post]
// @Security BearerAuth
func NewCreatePostHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		var req CreatePostRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, "")
			return
		}

		postID, err := svc.CreatePost(r.Context(), userID, req.Content, req.ImageURL)
		if err != nil {
			writeError(w, r, err, "Server error creating post.")
			return
		}

		writeJSON(w, http.StatusCreated, CreatePostResponse{
			Message: "Post created successfully!",
			PostID:  postID,
		})
	}
}
