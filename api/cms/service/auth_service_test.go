package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/models/dto"
)

func TestAuthService_GenerateAndParse(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice")

	resp, err := env.auth.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 86400, resp.ExpiresIn)

	claims, err := env.auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_DestroyToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice")

	resp, err := env.auth.GenerateToken(user)
	require.NoError(t, err)

	claims, err := env.auth.ParseToken(resp.Token)
	require.NoError(t, err)
	require.NoError(t, env.auth.DestroyToken(claims))

	_, err = env.auth.ParseToken(resp.Token)
	assert.ErrorIs(t, err, errors.AuthTokenRevoked)
	assert.Equal(t, 401, errors.HTTPStatusCode(err))
}

func TestAuthService_ParseTokenRejects(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice")

	resp, err := env.auth.GenerateToken(user)
	require.NoError(t, err)

	sign := func(secret string, claims *dto.JwtClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	expired := &dto.JwtClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired",
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	tamper := func(token string) string {
		i := strings.LastIndex(token, ".") + 1
		c := byte('A')
		if token[i] == c {
			c = 'B'
		}
		return token[:i] + string(c) + token[i+1:]
	}

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"malformed", "not-a-token", errors.AuthTokenMalformed},
		{"tampered", tamper(resp.Token), errors.AuthTokenInvalid},
		{"foreign secret", sign("another-secret", &dto.JwtClaims{
			RegisteredClaims: jwt.RegisteredClaims{ID: "foreign", Subject: user.ID},
		}), errors.AuthTokenInvalid},
		{"expired", sign(env.config.Auth.Secret, expired), errors.AuthTokenExpired},
		{"unknown token id", sign(env.config.Auth.Secret, &dto.JwtClaims{
			RegisteredClaims: jwt.RegisteredClaims{ID: "never-issued", Subject: user.ID},
		}), errors.AuthTokenRevoked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.ParseToken(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
