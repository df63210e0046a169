package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-social/internal/apperrors"
	"github.com/sbilibin2017/gw-social/internal/jwt"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
)

var (
	errInvalidBody = apperrors.New(apperrors.ErrValidation, "Invalid request body.")
	errInvalidID   = apperrors.New(apperrors.ErrValidation, "Invalid id.")
)

// MessageResponse is the body of every error response
// swagger:model MessageResponse
type MessageResponse struct {
	// Human readable message
	// default: Post not found.
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError answers with the status and message of a known error kind.
// Anything else is logged and answered with 500 and serverMessage.
func writeError(w http.ResponseWriter, r *http.Request, err error, serverMessage string) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"err", err,
		)
		writeJSON(w, status, MessageResponse{Message: serverMessage})
		return
	}
	writeJSON(w, status, MessageResponse{Message: apperrors.Message(err)})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.Debugw("invalid request body", "err", err)
		return errInvalidBody
	}
	return nil
}

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// currentUserID returns the id of the authenticated user.
func currentUserID(r *http.Request) (int64, error) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		return 0, jwt.ErrMissingToken
	}
	return claims.UserID, nil
}
