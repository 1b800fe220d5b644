package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Assessment as-of modes.
const (
	AsOfNow    = "now"
	AsOfLatest = "latest"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	JWT        JWTConfig
	S3         S3Config
	Log        LogConfig
	CORS       CORSConfig
	Assessment AssessmentConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
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

// JWTConfig holds session token settings.
type JWTConfig struct {
	Secret       string        `mapstructure:"secret"`
	Expiry       time.Duration `mapstructure:"expiry"`
	Issuer       string        `mapstructure:"issuer"`
	CookieName   string        `mapstructure:"cookie_name"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

// S3Config holds settings for the register archive bucket.
type S3Config struct {
	Enabled       bool   `mapstructure:"enabled"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AssessmentConfig controls how assessments pick their rate snapshot.
type AssessmentConfig struct {
	DefaultAsOf string `mapstructure:"default_as_of"`
	LogDefaults bool   `mapstructure:"log_defaults"`
}

// PinToNow reports whether requests without an explicit as-of date are
// pinned to the current date. The alternative takes the newest row per key
// even when it is dated in the future.
func (a *AssessmentConfig) PinToNow() bool {
	return !strings.EqualFold(a.DefaultAsOf, AsOfLatest)
}

// Load reads configuration from environment variables with the GP_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "grampanchayat")
	v.SetDefault("db.password", "grampanchayat_secret")
	v.SetDefault("db.name", "grampanchayat")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "grampanchayat")
	v.SetDefault("jwt.cookie_name", "gp_token")
	v.SetDefault("jwt.cookie_secure", false)

	// S3 defaults
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "grampanchayat-registers")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Assessment defaults
	v.SetDefault("assessment.default_as_of", AsOfNow)
	v.SetDefault("assessment.log_defaults", true)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "GP_SERVER_PORT",
		"server.read_timeout":      "GP_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "GP_SERVER_WRITE_TIMEOUT",
		"server.environment":       "GP_SERVER_ENVIRONMENT",
		"db.host":                  "GP_DB_HOST",
		"db.port":                  "GP_DB_PORT",
		"db.user":                  "GP_DB_USER",
		"db.password":              "GP_DB_PASSWORD",
		"db.name":                  "GP_DB_NAME",
		"db.sslmode":               "GP_DB_SSLMODE",
		"db.max_open":              "GP_DB_MAX_OPEN",
		"db.max_idle":              "GP_DB_MAX_IDLE",
		"jwt.secret":               "GP_JWT_SECRET",
		"jwt.expiry":               "GP_JWT_EXPIRY",
		"jwt.issuer":               "GP_JWT_ISSUER",
		"jwt.cookie_name":          "GP_JWT_COOKIE_NAME",
		"jwt.cookie_secure":        "GP_JWT_COOKIE_SECURE",
		"s3.enabled":               "GP_S3_ENABLED",
		"s3.region":                "GP_S3_REGION",
		"s3.bucket":                "GP_S3_BUCKET",
		"s3.endpoint":              "GP_S3_ENDPOINT",
		"s3.access_key":            "GP_S3_ACCESS_KEY",
		"s3.secret_key":            "GP_S3_SECRET_KEY",
		"s3.presign_expiry":        "GP_S3_PRESIGN_EXPIRY",
		"log.level":                "GP_LOG_LEVEL",
		"log.format":               "GP_LOG_FORMAT",
		"cors.allowed_origins":     "GP_CORS_ALLOWED_ORIGINS",
		"assessment.default_as_of": "GP_ASSESSMENT_DEFAULT_AS_OF",
		"assessment.log_defaults":  "GP_ASSESSMENT_LOG_DEFAULTS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if GP_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GP_SERVER_PORT") == "" {
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
		Secret:       v.GetString("jwt.secret"),
		Expiry:       v.GetDuration("jwt.expiry"),
		Issuer:       v.GetString("jwt.issuer"),
		CookieName:   v.GetString("jwt.cookie_name"),
		CookieSecure: v.GetBool("jwt.cookie_secure"),
	}
	cfg.S3 = S3Config{
		Enabled:       v.GetBool("s3.enabled"),
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	asOf := strings.ToLower(strings.TrimSpace(v.GetString("assessment.default_as_of")))
	if asOf != AsOfNow && asOf != AsOfLatest {
		return nil, fmt.Errorf("assessment.default_as_of must be %q or %q, got %q", AsOfNow, AsOfLatest, asOf)
	}
	cfg.Assessment = AssessmentConfig{
		DefaultAsOf: asOf,
		LogDefaults: v.GetBool("assessment.log_defaults"),
	}

	return cfg, nil
}
