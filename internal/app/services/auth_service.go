package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/app/repositories"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
	"github.com/jkta/athletereg/internal/pkg/auth"
	"github.com/jkta/athletereg/internal/pkg/logger"
)

// AuthService handles staff authentication
type AuthService struct {
	adminRepo  repositories.IAdminRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService instance
func NewAuthService(adminRepo repositories.IAdminRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login authenticates an admin account and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		logger.Warn().Str("email", req.Email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
