package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/internal/repository"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/store"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	users := repository.NewUserRepository(store.NewMemory())
	svc := NewAuthService(users, nil, nil, AuthConfig{Secret: "test-secret", Expiration: time.Hour})

	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, users.Insert(context.Background(), &models.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}))
	return svc, users
}

func TestAuthLoginSuccess(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "admin123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, resp.UserID, claims.UserID)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "wrong",
		Role:     "admin",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthLoginWrongRole(t *testing.T) {
	svc, _ := newAuthFixture(t)

	// valid credentials under the wrong role are rejected
	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "admin123",
		Role:     "teacher",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthLoginValidation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "x", Role: "superuser"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
