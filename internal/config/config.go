package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppEnv           = "dev"
	defaultPort             = "8080"
	defaultDatabaseURL      = "inventory.db"
	defaultCORSOrigins      = "http://localhost:5173"
	defaultLogLevel         = "info"
	defaultSeedOnStart      = "true"
	defaultLocationCacheTTL = "5m"
)

type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	CORSAllowedOrigins []string
	LogLevel           string
	SeedOnStart        bool
	RedisAddress       string
	RedisPassword      string
	LocationCacheTTL   time.Duration
}

// Load reads the server configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment")
	}

	cfg := &Config{}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", defaultAppEnv)))
	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.SeedOnStart = parseBoolEnv("SEED_ON_START", defaultSeedOnStart)
	cfg.RedisAddress = strings.TrimSpace(getEnv("REDIS_ADDRESS", ""))
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	var err error
	cfg.LocationCacheTTL, err = parseDurationEnv("LOCATION_CACHE_TTL", defaultLocationCacheTTL)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.LocationCacheTTL <= 0 {
		return fmt.Errorf("LOCATION_CACHE_TTL must be > 0")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}
	for _, o := range cfg.CORSAllowedOrigins {
		if o == "*" && isProdLike(cfg.AppEnv) {
			return fmt.Errorf("in prod/release CORS_ALLOWED_ORIGINS must not contain *")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
