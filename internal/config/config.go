package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"interact-club.backend/pkg/crypto"
)

const (
	// MinJWTSecretLength is enforced only in production.
	MinJWTSecretLength = 32

	defaultJWTSecret = "change-this-in-production"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Seed     SeedConfig
	Jobs     JobsConfig
	Mail     MailConfig
	AdminUI  AdminUIConfig
}

// ServerConfig holds API server configuration
type ServerConfig struct {
	Port        string   `env:"SERVER_PORT" envDefault:"8000"`
	Env         string   `env:"SERVER_ENV" envDefault:"development"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string `env:"DB_DRIVER" envDefault:"sqlite"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       int    `env:"DB_PORT" envDefault:"5432"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"interact_club"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"./data/interact.db"`
}

// URL returns the postgres connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration. Redis is optional.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Password string `env:"REDIS_PASSWORD"`
}

// Enabled reports whether a Redis URL was provided.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret       string        `env:"JWT_SECRET" envDefault:"change-this-in-production"`
	AccessExpiry time.Duration `env:"JWT_ACCESS_EXPIRY" envDefault:"24h"`
}

// AdminConfig identifies the single administrator account.
type AdminConfig struct {
	Email        string `env:"ADMIN_EMAIL" envDefault:"admin@interactkop.com"`
	Name         string `env:"ADMIN_NAME" envDefault:"Administrator"`
	Password     string `env:"ADMIN_PASSWORD"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// SeedConfig controls sample-content seeding
type SeedConfig struct {
	OnStart bool `env:"SEED_ON_START" envDefault:"false"`
}

// JobsConfig holds background job schedules (robfig/cron syntax).
// An empty schedule disables the job.
type JobsConfig struct {
	RegistrationCloseSchedule string `env:"REGISTRATION_CLOSE_SCHEDULE"`
}

// MailConfig configures contact notifications through Resend
type MailConfig struct {
	ResendAPIKey string        `env:"RESEND_API_KEY"`
	From         string        `env:"MAIL_FROM" envDefault:"Interact Club <noreply@interactkop.com>"`
	ContactInbox string        `env:"CONTACT_INBOX" envDefault:"interactkop@gmail.com"`
	Timeout      time.Duration `env:"MAIL_TIMEOUT" envDefault:"15s"`
}

// Enabled reports whether notifications can be sent.
func (c MailConfig) Enabled() bool {
	return c.ResendAPIKey != "" && c.ContactInbox != ""
}

// AdminUIConfig holds configuration of the admin panel binary
type AdminUIConfig struct {
	Port            string        `env:"ADMIN_UI_PORT" envDefault:"3000"`
	APIBaseURL      string        `env:"ADMIN_API_BASE_URL" envDefault:"http://localhost:8000/api"`
	APITimeout      time.Duration `env:"ADMIN_API_TIMEOUT"`
	SessionKey      string        `env:"ADMIN_SESSION_KEY"`
	CSRFKey         string        `env:"ADMIN_CSRF_KEY"`
	CookieSecure    bool          `env:"ADMIN_COOKIE_SECURE" envDefault:"false"`
	SessionLifetime time.Duration `env:"ADMIN_SESSION_LIFETIME" envDefault:"12h"`
}

// CSRFKeyBytes decodes ADMIN_CSRF_KEY (64 hex chars). An empty key yields nil.
func (c AdminUIConfig) CSRFKeyBytes() ([]byte, error) {
	if c.CSRFKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(c.CSRFKey)
	if err != nil || len(key) != 32 {
		return nil, errors.New("ADMIN_CSRF_KEY must be 64 hex characters")
	}
	return key, nil
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.Admin.Email = strings.ToLower(strings.TrimSpace(cfg.Admin.Email))
	cfg.AdminUI.APIBaseURL = strings.TrimRight(cfg.AdminUI.APIBaseURL, "/")
	return cfg, nil
}

// IsProduction reports whether SERVER_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks the settings the API server cannot run without.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", c.Database.Driver)
	}
	if c.Admin.Email == "" {
		return errors.New("ADMIN_EMAIL is required")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	if c.Admin.PasswordHash != "" && !crypto.IsBcryptHash(c.Admin.PasswordHash) {
		return errors.New("ADMIN_PASSWORD_HASH must be a bcrypt hash (see cmd/hash-gen)")
	}
	if c.JWT.AccessExpiry <= 0 {
		return errors.New("JWT_ACCESS_EXPIRY must be positive")
	}
	if c.IsProduction() {
		if c.JWT.Secret == defaultJWTSecret || len(c.JWT.Secret) < MinJWTSecretLength {
			return fmt.Errorf("JWT_SECRET must be at least %d characters and not the default in production", MinJWTSecretLength)
		}
	}
	return nil
}

// ValidateAdminUI checks the settings the admin panel cannot run without.
func (c *Config) ValidateAdminUI() error {
	if c.AdminUI.APIBaseURL == "" {
		return errors.New("ADMIN_API_BASE_URL is required")
	}
	if c.AdminUI.APITimeout < 0 {
		return errors.New("ADMIN_API_TIMEOUT must not be negative")
	}
	if _, err := c.AdminUI.CSRFKeyBytes(); err != nil {
		return err
	}
	if c.IsProduction() && c.AdminUI.CSRFKey == "" {
		return errors.New("ADMIN_CSRF_KEY is required in production")
	}
	if c.Redis.Enabled() && c.AdminUI.SessionKey == "" {
		return errors.New("ADMIN_SESSION_KEY is required when REDIS_URL is set")
	}
	return nil
}
