package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/jkta/athletereg/internal/app/controllers"
	appMigrations "github.com/jkta/athletereg/internal/app/migrations"
	appRepos "github.com/jkta/athletereg/internal/app/repositories"
	appRoutes "github.com/jkta/athletereg/internal/app/routes"
	appServices "github.com/jkta/athletereg/internal/app/services"
	"github.com/jkta/athletereg/internal/config"
	"github.com/jkta/athletereg/internal/db"
	appMiddleware "github.com/jkta/athletereg/internal/middleware"
	pkgAuth "github.com/jkta/athletereg/internal/pkg/auth"
	"github.com/jkta/athletereg/internal/pkg/contentstore"
	"github.com/jkta/athletereg/internal/pkg/email"
	"github.com/jkta/athletereg/internal/pkg/helpers"
	"github.com/jkta/athletereg/internal/pkg/idcard"
	"github.com/jkta/athletereg/internal/pkg/logger"
	"github.com/jkta/athletereg/internal/pkg/payment"
	"github.com/jkta/athletereg/internal/pkg/regno"
	"github.com/jkta/athletereg/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	ContentStore           contentstore.ContentStore
	PaymentGateway         payment.Gateway
	CardRenderer           idcard.Renderer
	Mailer                 email.Mailer
	RegistrationService    *appServices.RegistrationService
	PaymentService         *appServices.PaymentService
	AuthService            *appServices.AuthService
	RegistrationController *appControllers.RegistrationController
	PaymentController      *appControllers.PaymentController
	AuthController         *appControllers.AuthController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	store, err := contentstore.NewCloudinaryStore(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		lgr,
	)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize content store")
		return nil, fmt.Errorf("failed to initialize content store: %w", err)
	}
	deps.ContentStore = store

	renderer, err := idcard.NewPDFRenderer(cfg.Cards.WorkDir, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize card renderer")
		return nil, fmt.Errorf("failed to initialize card renderer: %w", err)
	}
	deps.CardRenderer = renderer

	deps.PaymentGateway = payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, lgr)

	deps.Mailer = email.NewSMTPMailer(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.RegistrationService = appServices.NewRegistrationService(
		deps.Repos.Registrations,
		deps.ContentStore,
		deps.PaymentGateway,
		regno.NewGenerator(),
		cfg.Pricing,
		cfg.Cloudinary.UploadFolder,
	)

	deps.PaymentService = appServices.NewPaymentService(
		deps.Repos.Registrations,
		deps.Repos.Enrollments,
		deps.ContentStore,
		deps.CardRenderer,
		deps.Mailer,
		cfg.Razorpay.KeySecret,
		cfg.Cloudinary.CardFolder,
	)

	deps.AuthService = appServices.NewAuthService(deps.Repos.Admins, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.RegistrationController,
		deps.PaymentController,
		deps.AuthController,
		deps.AuthMiddleware,
	)

	return router
}
