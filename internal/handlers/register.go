package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string, profilePictureURL *string) (int64, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Profile picture URL
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`

	// Alias of profilePictureUrl sent by older clients
	ImgLink *string `json:"ImgLink,omitempty"`
}

func (req RegisterRequest) pictureURL() *string {
	if req.ProfilePictureURL != nil && *req.ProfilePictureURL != "" {
		return req.ProfilePictureURL
	}
	return req.ImgLink
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully!
	Message string `json:"message"`

	// Id of the new user
	UserID int64 `json:"userId"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.MessageResponse "Missing field or invalid body"
// @Failure 409 {object} handlers.MessageResponse "Username or email already exists"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, "")
			return
		}

		userID, err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.pictureURL())
		if err != nil {
			writeError(w, r, err, "Server error during registration.")
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully!",
			UserID:  userID,
		})
	}
}
