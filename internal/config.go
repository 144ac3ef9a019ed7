package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type StorageConfig struct {
	// Path of the on-device sqlite file backing the session store.
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- DEFAULTS -----------------

const (
	DefaultAPIBaseURL = "http://localhost:3000"
	DefaultAPITimeout = 10 * time.Second
)

// DefaultStoragePath resolves the per-user location of the session database.
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fintrack.db"
	}
	return filepath.Join(home, ".fintrack", "fintrack.db")
}

// LoadConfigFromEnv builds a configuration from FINTRACK_* environment
// variables, falling back to defaults for anything unset.
func LoadConfigFromEnv() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("FINTRACK_API_BASE_URL", DefaultAPIBaseURL),
			Timeout: getEnvAsDuration("FINTRACK_API_TIMEOUT", DefaultAPITimeout),
		},
		Storage: StorageConfig{
			Path: getEnv("FINTRACK_STORAGE_PATH", DefaultStoragePath()),
		},
		Logging: LoggingConfig{
			Level:  getEnv("FINTRACK_LOG_LEVEL", "info"),
			Format: getEnv("FINTRACK_LOG_FORMAT", "text"),
		},
	}
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.API.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("api config: %v", err))
	}

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("storage config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (c *APIConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not a valid URL", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

func (c *StorageConfig) Validate() error {
	if c.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level %q must be one of debug, info, warn, error", c.Level)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("format %q must be json or text", c.Format)
	}
	return nil
}
