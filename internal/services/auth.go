package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-social/internal/apperrors"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrRegisterFieldsRequired = apperrors.New(apperrors.ErrValidation, "All fields are required.")
	ErrLoginFieldsRequired    = apperrors.New(apperrors.ErrValidation, "Username and password are required.")
	ErrUserAlreadyExists      = apperrors.New(apperrors.ErrConflict, "Username or email already exists.")
	ErrInvalidCredentials     = apperrors.New(apperrors.ErrUnauthorized, "Invalid username or password.")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string, profilePictureURL *string) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a user and returns its id. Username and email are stored
// trimmed, the password as a bcrypt hash. An empty profilePictureURL is
// stored as NULL.
func (svc *AuthService) Register(ctx context.Context, username, email, password string, profilePictureURL *string) (int64, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return 0, ErrRegisterFieldsRequired
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	userID, err := svc.writer.Save(ctx, username, email, hashedPassword, nonEmpty(profilePictureURL))
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Log.Warnw("user already exists", "username", username, "email", email)
			return 0, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return userID, nil
}

// Login authenticates a user and returns a JWT token with the user summary.
// Unknown usernames and wrong passwords fail with the same error.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserSummary, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, ErrLoginFieldsRequired
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if !verifyPassword(password, user.Password) {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, &models.UserSummary{ID: user.UserID, Username: user.Username}, nil
}

func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// nonEmpty turns pointers to blank strings into nil.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
