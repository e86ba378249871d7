// ABOUTME: Centralized configuration for the carenotes CLI and servers
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// Storage backends selectable with CARENOTES_BACKEND
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendCharm  = "charm"
	BackendSQLite = "sqlite"
)

// Config holds all configuration for carenotes
type Config struct {
	// Storage settings
	Backend    string
	DataDir    string
	Namespace  string
	SQLitePath string

	// Charm settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool
	SyncRetries int

	// Assistant settings
	ReplyDelay time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	dataDir := getEnv("CARENOTES_DATA_DIR", filepath.Join(xdg.DataHome, "carenotes"))

	cfg := &Config{
		// Defaults
		Backend:     getEnv("CARENOTES_BACKEND", BackendFile),
		DataDir:     dataDir,
		Namespace:   getEnv("CARENOTES_NAMESPACE", "carenotes-data"),
		SQLitePath:  getEnv("CARENOTES_SQLITE_PATH", filepath.Join(dataDir, "carenotes.db")),
		CharmHost:   getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName: getEnv("CHARM_DB", "carenotes"),
		AutoSync:    getEnvBool("CHARM_AUTO_SYNC", true),
		SyncRetries: getEnvInt("CHARM_SYNC_RETRIES", 3),
		ReplyDelay:  getEnvDuration("ASSISTANT_REPLY_DELAY", 1500*time.Millisecond),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	return cfg, cfg.Validate()
}

// Validate checks backend, namespace, delay, retry, and log level settings
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendMemory, BackendCharm, BackendSQLite:
	default:
		return fmt.Errorf("CARENOTES_BACKEND must be one of file, memory, charm, sqlite; got %q", c.Backend)
	}
	if c.Namespace == "" {
		return fmt.Errorf("CARENOTES_NAMESPACE cannot be empty")
	}
	if c.ReplyDelay < 0 {
		return fmt.Errorf("ASSISTANT_REPLY_DELAY must not be negative, got %v", c.ReplyDelay)
	}
	if c.SyncRetries < 0 || c.SyncRetries > 10 {
		return fmt.Errorf("CHARM_SYNC_RETRIES must be 0-10, got %d", c.SyncRetries)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn, or error; got %q", c.LogLevel)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
