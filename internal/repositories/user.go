package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/models"
)

const userColumns = `id, username, email, password, bio, profile_picture_url, created_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns nil without error when no user has that username.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.get(ctx, query, username)
}

// GetByID returns nil without error when the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)
	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns its id. A taken username or email
// yields ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string, profilePictureURL *string) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password, profile_picture_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{username, email, passwordHash, profilePictureURL}

	var userID int64
	err := r.db.GetContext(ctx, &userID, query, args...)

	// never log the hash
	logQuery(query, []any{username, email, "***", profilePictureURL}, userID, err)

	if err != nil {
		return 0, translateError(err)
	}
	return userID, nil
}
