package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL, default=24h"`

	SQLite SQLiteConfig
	Seed   SeedConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=./data/registry.db"`
}

// SeedConfig describes the optional bootstrap admin account. The ten generic
// user01..user10 accounts are always seeded.
type SeedConfig struct {
	AdminUser string `env:"SEED_ADMIN_USER"`
	AdminPass string `env:"SEED_ADMIN_PASS"`
	AdminRole string `env:"SEED_ADMIN_ROLE, default=admin"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
