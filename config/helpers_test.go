// ABOUTME: Test helpers for config tests
// ABOUTME: Isolates Load from the process environment and writes dotenv fixtures

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// envKeys lists every variable Load reads.
var envKeys = []string{
	"ENV_FILE", "PORT", "SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS",
	"DB_PATH", "RACK_UNITS", "CACHE_TTL",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_CHECK", "RATE_LIMIT_WRITE", "RATE_LIMIT_DEFAULT",
}

// withEnv unsets every config variable for the duration of the test, points
// ENV_FILE at a file that does not exist, then applies extra.
// t.Setenv restores the original values afterwards.
func withEnv(t *testing.T, extra map[string]string) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for key, value := range extra {
		t.Setenv(key, value)
	}
}

// writeEnvFile writes a dotenv file into a temp dir and returns its path.
func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	return path
}
