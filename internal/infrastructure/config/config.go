package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string        `env:"PORT,           default=8080"`
	Env           string        `env:"ENV,            default=development"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	JWTSecret     string        `env:"JWT_SECRET"`
	JWTTTL        time.Duration `env:"JWT_TTL,        default=24h"`
	CORSOrigins   []string      `env:"CORS_ORIGINS"`
	MigrationsDir string        `env:"MIGRATIONS_DIR, default=migrations"`

	DB DBConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST,      default=localhost"`
	Port     int    `env:"DB_PORT,      default=5432"`
	User     string `env:"DB_USER,      default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,      default=crm"`
	SSLMode  string `env:"DB_SSLMODE,   default=disable"`
	MaxConns int    `env:"DB_MAX_CONNS, default=10"`
}

// DSN renders the PostgreSQL connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// MissingSettings lists required settings that are absent. A non-empty
// result fails the readiness probe rather than startup: the process stays
// up and reports itself unready.
func (c *Config) MissingSettings() []string {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.DB.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	return missing
}
