package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	Mail      MailConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=vittavardhan"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string        `env:"SMTP_HOST, default=localhost"`
	Port     int           `env:"SMTP_PORT, default=587"`
	Username string        `env:"SMTP_USER"`
	Password string        `env:"SMTP_PASS"`
	From     string        `env:"SMTP_FROM"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT, default=10s"`
	Workers  int           `env:"MAIL_WORKERS, default=4"`
}

// MailConfig maps inquiry types to recipient addresses. CompanyEmail is the
// fallback for unknown or unmapped types.
type MailConfig struct {
	CompanyEmail string `env:"COMPANY_EMAIL"`
	SupportEmail string `env:"SUPPORT_EMAIL"`
	HREmail      string `env:"HR_EMAIL"`
	HelpEmail    string `env:"HELP_EMAIL"`
}

// AdminConfig seeds the admin account at startup. No account is created
// when Password is left unset.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Password string `env:"ADMIN_PASSWORD"`
	Email    string `env:"ADMIN_EMAIL"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT,  default=100"`
	Window   time.Duration `env:"RATE_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
