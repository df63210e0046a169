package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var userRowColumns = []string{"id", "username", "email", "password", "bio", "profile_picture_url", "created_at"}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		queryErr  error
		wantUser  bool
		wantError bool
	}{
		{
			name:     "found",
			rows:     sqlmock.NewRows(userRowColumns).AddRow(1, "alice", "a@x.com", "hash", nil, nil, time.Now()),
			wantUser: true,
		},
		{
			name: "not found",
			rows: sqlmock.NewRows(userRowColumns),
		},
		{
			name:      "query error",
			queryErr:  errors.New("db down"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserReadRepository(db)

			exp := mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).WithArgs("alice")
			if tt.queryErr != nil {
				exp.WillReturnError(tt.queryErr)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			user, err := repo.GetByUsername(context.Background(), "alice")
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantUser {
				assert.Equal(t, int64(1), user.UserID)
				assert.Equal(t, "hash", user.Password)
				assert.Nil(t, user.Bio)
			} else {
				assert.Nil(t, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	bio := "hello there"
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(5, "bob", "b@x.com", "hash", bio, "http://img", time.Now()))

	user, err := repo.GetByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, bio, *user.Bio)
	assert.Equal(t, "http://img", *user.ProfilePictureURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	pic := "http://pic"

	tests := []struct {
		name     string
		queryErr error
		wantID   int64
		wantErr  error
	}{
		{name: "success", wantID: 11},
		{name: "duplicate", queryErr: &pgconn.PgError{Code: "23505"}, wantErr: ErrUniqueViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserWriteRepository(db)

			exp := mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, email, password, profile_picture_url)")).
				WithArgs("alice", "a@x.com", "hash", sqlmock.AnyArg())
			if tt.queryErr != nil {
				exp.WillReturnError(tt.queryErr)
			} else {
				exp.WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(tt.wantID))
			}

			id, err := repo.Save(context.Background(), "alice", "a@x.com", "hash", &pic)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
