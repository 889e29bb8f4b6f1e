package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Razorpay struct {
		KeyID     string `yaml:"key_id" env:"RAZORPAY_KEY_ID"`
		KeySecret string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET"`
	} `yaml:"razorpay"`

	Cloudinary struct {
		CloudName string `yaml:"cloud_name" env:"CLOUDINARY_CLOUD_NAME"`
		APIKey    string `yaml:"api_key" env:"CLOUDINARY_API_KEY"`
		APISecret string `yaml:"api_secret" env:"CLOUDINARY_API_SECRET"`
		// Folder namespaces for applicant documents and rendered cards.
		UploadFolder string `yaml:"upload_folder" env:"CLOUDINARY_UPLOAD_FOLDER"`
		CardFolder   string `yaml:"card_folder" env:"CLOUDINARY_CARD_FOLDER"`
	} `yaml:"cloudinary"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
	} `yaml:"smtp"`

	Pricing PricingConfig `yaml:"pricing"`

	Cards struct {
		// WorkDir is where rendered card PDFs are written before upload.
		WorkDir string `yaml:"work_dir" env:"CARDS_WORK_DIR"`
	} `yaml:"cards"`

	Admin struct {
		Email    string `yaml:"email" env:"ADMIN_EMAIL"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// PricingConfig holds the membership fee schedule.
type PricingConfig struct {
	// Amounts are in the smallest currency unit (paise).
	StandardAmount int64  `yaml:"standard_amount" env:"PRICING_STANDARD_AMOUNT"`
	ExemptAmount   int64  `yaml:"exempt_amount" env:"PRICING_EXEMPT_AMOUNT"`
	ExemptEmail    string `yaml:"exempt_email" env:"PRICING_EXEMPT_EMAIL"`
	Currency       string `yaml:"currency" env:"PRICING_CURRENCY"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "athletereg"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.Issuer = "jkta.in"

	config.Cloudinary.UploadFolder = "uploads"
	config.Cloudinary.CardFolder = "idcards"

	config.Pricing.StandardAmount = 30000
	config.Pricing.ExemptAmount = 100
	config.Pricing.ExemptEmail = "info@jkta.in"
	config.Pricing.Currency = "INR"

	config.Cards.WorkDir = "cards"

	config.SMTP.Port = 587
	config.SMTP.FromName = "JKTA"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Razorpay.KeySecret == "" {
		return fmt.Errorf("razorpay key secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if config.Pricing.StandardAmount <= 0 || config.Pricing.ExemptAmount <= 0 {
		return fmt.Errorf("pricing amounts must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
