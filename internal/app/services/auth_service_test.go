package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkta/athletereg/internal/app/models"
	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
	"github.com/jkta/athletereg/internal/pkg/auth"
)

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	admin.ID = int64(len(f.admins) + 1)
	f.admins[admin.Email] = admin
	return nil
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.admins[email]
	return ok, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeAdminRepo) {
	t.Helper()
	repo := newFakeAdminRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "athletereg-test",
	})

	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &models.Admin{
		Email:    "admin@jkta.in",
		Password: hashed,
	}))

	return NewAuthService(repo, jwtService), repo
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@jkta.in",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@jkta.in",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@jkta.in",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
