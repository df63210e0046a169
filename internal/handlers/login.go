package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.UserSummary, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful!
	Message string `json:"message"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Logged in user
	User *models.UserSummary `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.MessageResponse "Missing field or invalid body"
// @Failure 401 {object} handlers.MessageResponse "Invalid username or password"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, "")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, r, err, "Server error during login.")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message: "Login successful!",
			Token:   token,
			User:    user,
		})
	}
}
