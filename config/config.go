// ABOUTME: Configuration loader for the rack-space service
// ABOUTME: Loads settings from an optional .env file and environment variables with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MaxRackUnits bounds RACK_UNITS; it matches the service-side rack validation.
const MaxRackUnits = 100

type Config struct {
	// Server
	Port               string
	ShutdownTimeout    int      // seconds
	CORSAllowedOrigins []string // allowed CORS origins (empty = any origin)

	// Inventory
	DBPath    string
	RackUnits int // default capacity for racks created without total_units
	CacheTTL  int // seconds, rack list cache

	// Rate Limiting (requests per minute per client)
	RateLimitEnabled bool
	RateLimitCheck   int
	RateLimitWrite   int
	RateLimitDefault int
}

// Load reads .env (when ENV_FILE or ./.env exists) and the process environment.
// Values already set in the environment win over the file.
func Load() (*Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		ShutdownTimeout:    getEnvInt("SHUTDOWN_TIMEOUT", 10),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		DBPath:    getEnv("DB_PATH", "assetdex.db"),
		RackUnits: getEnvInt("RACK_UNITS", 42),
		CacheTTL:  getEnvInt("CACHE_TTL", 30),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitCheck:   getEnvInt("RATE_LIMIT_CHECK", 600),
		RateLimitWrite:   getEnvInt("RATE_LIMIT_WRITE", 60),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 300),
	}

	if cfg.RackUnits < 1 || cfg.RackUnits > MaxRackUnits {
		return nil, fmt.Errorf("RACK_UNITS must be between 1 and %d, got %d", MaxRackUnits, cfg.RackUnits)
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must not be negative, got %d", cfg.CacheTTL)
	}
	if cfg.ShutdownTimeout < 1 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be at least 1, got %d", cfg.ShutdownTimeout)
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return nil, fmt.Errorf("DB_PATH must not be empty")
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_CHECK", cfg.RateLimitCheck},
		{"RATE_LIMIT_WRITE", cfg.RateLimitWrite},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return cfg, nil
}

// loadEnvFile applies a dotenv file without overriding existing variables.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
