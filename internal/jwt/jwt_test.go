package jwt

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-social/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 42, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_DefaultExpirationIsOneHour(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, "bob")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, 7, "carol")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_GetClaims_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, 3, "dave")
	assert.NoError(t, err)

	_, err = j2.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.True(t, errors.Is(err, ErrMissingToken))
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()

	_, ok := ClaimsFromContext(ctx)
	assert.False(t, ok)

	ctx = WithClaims(ctx, &Claims{UserID: 9, Username: "erin"})
	claims, ok := ClaimsFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(9), claims.UserID)
}
