package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	DB          DBConfig
	JWT         JWTConfig
	Log         LogConfig
	CORS        CORSConfig
	Recommender RecommenderConfig
	Share       ShareConfig
	Email       EmailConfig
	Google      GoogleConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RecommenderConfig holds settings for the hosted text-generation service behind
// the material/size recommendation feature.
type RecommenderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ShareConfig holds settings for shareable invoice links.
type ShareConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// GoogleConfig holds Google sign-in settings.
type GoogleConfig struct {
	ClientID string `mapstructure:"client_id"`
}

// Load reads configuration from environment variables with the ARAVALLI_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ARAVALLI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "aravalli")
	v.SetDefault("db.password", "aravalli_secret")
	v.SetDefault("db.name", "aravalli_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "aravalli")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Recommender defaults
	v.SetDefault("recommender.provider", "claude")
	v.SetDefault("recommender.api_key", "")
	v.SetDefault("recommender.default_model", "claude-sonnet-4-20250514")
	v.SetDefault("recommender.timeout_secs", 60)

	// Share defaults
	v.SetDefault("share.base_url", "http://localhost:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@aravallifurniture.in")
	v.SetDefault("email.from_name", "Aravalli Furniture")

	// Google sign-in defaults
	v.SetDefault("google.client_id", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "ARAVALLI_SERVER_PORT",
		"server.read_timeout":       "ARAVALLI_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "ARAVALLI_SERVER_WRITE_TIMEOUT",
		"server.environment":        "ARAVALLI_SERVER_ENVIRONMENT",
		"db.host":                   "ARAVALLI_DB_HOST",
		"db.port":                   "ARAVALLI_DB_PORT",
		"db.user":                   "ARAVALLI_DB_USER",
		"db.password":               "ARAVALLI_DB_PASSWORD",
		"db.name":                   "ARAVALLI_DB_NAME",
		"db.sslmode":                "ARAVALLI_DB_SSLMODE",
		"db.max_open":               "ARAVALLI_DB_MAX_OPEN",
		"db.max_idle":               "ARAVALLI_DB_MAX_IDLE",
		"jwt.secret":                "ARAVALLI_JWT_SECRET",
		"jwt.access_expiry":         "ARAVALLI_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":        "ARAVALLI_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                "ARAVALLI_JWT_ISSUER",
		"log.level":                 "ARAVALLI_LOG_LEVEL",
		"log.format":                "ARAVALLI_LOG_FORMAT",
		"cors.allowed_origins":      "ARAVALLI_CORS_ALLOWED_ORIGINS",
		"recommender.provider":      "ARAVALLI_RECOMMENDER_PROVIDER",
		"recommender.api_key":       "ARAVALLI_RECOMMENDER_API_KEY",
		"recommender.default_model": "ARAVALLI_RECOMMENDER_DEFAULT_MODEL",
		"recommender.timeout_secs":  "ARAVALLI_RECOMMENDER_TIMEOUT_SECS",
		"share.base_url":            "ARAVALLI_SHARE_BASE_URL",
		"email.provider":            "ARAVALLI_EMAIL_PROVIDER",
		"email.region":              "ARAVALLI_EMAIL_REGION",
		"email.from_address":        "ARAVALLI_EMAIL_FROM_ADDRESS",
		"email.from_name":           "ARAVALLI_EMAIL_FROM_NAME",
		"google.client_id":          "ARAVALLI_GOOGLE_CLIENT_ID",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ARAVALLI_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ARAVALLI_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Recommender = RecommenderConfig{
		Provider:     v.GetString("recommender.provider"),
		APIKey:       v.GetString("recommender.api_key"),
		DefaultModel: v.GetString("recommender.default_model"),
		TimeoutSecs:  v.GetInt("recommender.timeout_secs"),
	}
	cfg.Share = ShareConfig{
		BaseURL: strings.TrimRight(v.GetString("share.base_url"), "/"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Google = GoogleConfig{
		ClientID: v.GetString("google.client_id"),
	}

	return cfg, nil
}
