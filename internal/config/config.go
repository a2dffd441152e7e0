package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/cmlabs-hris/training-backend-go/internal/service/analytics"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Storage   StorageConfig
	Analytics analytics.Config
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration. Tokens are issued by the auth service;
// this service only verifies them.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name        string
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// StorageConfig selects the object storage that backs file listings
type StorageConfig struct {
	Type            string // "local" or "gcs"
	BasePath        string
	BaseURL         string
	GCSBucket       string
	GCSCredentials  string // path to a service account file, empty for ADC
	GCSPublicDomain string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{}

	// Database configuration
	config.Database = DatabaseConfig{
		Host:     v.GetString("DB_HOST"),
		Port:     v.GetInt("DB_PORT"),
		User:     v.GetString("DB_USER"),
		Password: v.GetString("DB_PASSWORD"),
		Name:     v.GetString("DB_NAME"),
		SSLMode:  v.GetString("DB_SSL_MODE"),
		MaxConns: v.GetInt32("DB_MAX_CONNS"),
		MinConns: v.GetInt32("DB_MIN_CONNS"),
	}

	// Application configuration
	config.App = AppConfig{
		Name:        v.GetString("APP_NAME"),
		Port:        v.GetInt("APP_PORT"),
		Env:         v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		FrontendURL: v.GetString("FRONTEND_URL"),
	}

	config.JWT = JWTConfig{
		Secret: v.GetString("JWT_SECRET_KEY"),
	}

	config.Storage = StorageConfig{
		Type:            strings.ToLower(v.GetString("STORAGE_TYPE")),
		BasePath:        v.GetString("STORAGE_BASE_PATH"),
		BaseURL:         v.GetString("STORAGE_BASE_URL"),
		GCSBucket:       v.GetString("GCS_BUCKET_NAME"),
		GCSCredentials:  v.GetString("GCS_CREDENTIALS_FILE"),
		GCSPublicDomain: v.GetString("GCS_PUBLIC_DOMAIN"),
	}

	// Analytics thresholds live under "analytics." and read ANALYTICS_* env vars
	var settings struct {
		Analytics analytics.Config `mapstructure:"analytics"`
	}
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analytics config: %w", err)
	}
	config.Analytics = settings.Analytics

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "cmlabs-training")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)

	v.SetDefault("APP_NAME", "training-cmlabs")
	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")

	v.SetDefault("STORAGE_TYPE", "local")
	v.SetDefault("STORAGE_BASE_PATH", "./uploads")
	v.SetDefault("STORAGE_BASE_URL", "http://localhost:8080/uploads")

	d := analytics.DefaultConfig()
	v.SetDefault("analytics.critical_gap_threshold", d.CriticalGapThreshold)
	v.SetDefault("analytics.upcoming_deadline_window_days", d.UpcomingDeadlineWindowDays)
	v.SetDefault("analytics.top_k_ranking_size", d.TopKRankingSize)
	v.SetDefault("analytics.recent_trainings_limit", d.RecentTrainingsLimit)
	v.SetDefault("analytics.reporting_period_days", d.ReportingPeriodDays)
	v.SetDefault("analytics.dedupe_across_sources", d.DedupeAcrossSources)
	v.SetDefault("analytics.on_track_completion_rate", d.OverallStatus.OnTrackCompletionRate)
	v.SetDefault("analytics.on_track_max_overdue", d.OverallStatus.OnTrackMaxOverdue)
	v.SetDefault("analytics.critical_completion_rate", d.OverallStatus.CriticalCompletionRate)
	v.SetDefault("analytics.critical_overdue_count", d.OverallStatus.CriticalOverdueCount)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}

	switch c.Storage.Type {
	case "local":
		if c.Storage.BasePath == "" {
			return fmt.Errorf("STORAGE_BASE_PATH is required for local storage")
		}
	case "gcs":
		if c.Storage.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET_NAME is required for gcs storage")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE: %q", c.Storage.Type)
	}

	if err := c.Analytics.Validate(); err != nil {
		return fmt.Errorf("invalid analytics thresholds: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
