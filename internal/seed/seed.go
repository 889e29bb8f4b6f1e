package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jkta/athletereg/internal/app/models"
	"github.com/jkta/athletereg/internal/app/repositories"
	"github.com/jkta/athletereg/internal/config"
	"github.com/jkta/athletereg/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultData creates the default admin account if it doesn't exist
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	adminRepo := repositories.NewAdminRepository(dbPool)

	exists, err := adminRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Default admin already exists")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Admin{
		Email:    cfg.Admin.Email,
		Password: hashed,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Str("email", admin.Email).Msg("Default admin account created")
	return nil
}
