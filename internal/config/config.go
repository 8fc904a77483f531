package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/romanticformat/companion/internal/format"
)

// Config represents the application configuration.
type Config struct {
	// Format defines the allow list and ban list.
	Format FormatConfig `toml:"format"`

	// HTTP configures the Scryfall client.
	HTTP HTTPConfig `toml:"http"`

	// Cache configures the card result cache.
	Cache CacheConfig `toml:"cache"`

	// Check configures batch decklist checking.
	Check CheckConfig `toml:"check"`

	// App contains general application settings.
	App AppConfig `toml:"app"`
}

// FormatConfig defines which printings are legal and which cards are banned.
type FormatConfig struct {
	Name        string   `toml:"name"`         // Display name of the format
	AllowedSets []string `toml:"allowed_sets"` // Uppercase print-set codes
	BannedCards []string `toml:"banned_cards"` // Exact canonical card names
}

// HTTPConfig contains Scryfall client settings.
type HTTPConfig struct {
	Timeout   string `toml:"timeout"`    // Per-request timeout (e.g. "8s")
	MaxTries  int    `toml:"max_tries"`  // Attempts per request including the first
	UserAgent string `toml:"user_agent"` // Client identification header
}

// CacheConfig contains card result cache settings.
type CacheConfig struct {
	Enabled bool `toml:"enabled"`  // Enable in-memory result caching
	MaxSize int  `toml:"max_size"` // Max cached cards (0 = unlimited)
}

// CheckConfig contains decklist checking settings.
type CheckConfig struct {
	Workers int `toml:"workers"` // Concurrent lookup workers
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration: the Romantic format
// with Scryfall-friendly client settings.
func DefaultConfig() *Config {
	romantic := format.Romantic()

	return &Config{
		Format: FormatConfig{
			Name:        romantic.Name(),
			AllowedSets: romantic.AllowedSetCodes(),
			BannedCards: romantic.BannedCardNames(),
		},
		HTTP: HTTPConfig{
			Timeout:   "8s",
			MaxTries:  2,
			UserAgent: "rf-companion/1.0 (+https://github.com/romanticformat/companion)",
		},
		Cache: CacheConfig{
			Enabled: true,
			MaxSize: 0,
		},
		Check: CheckConfig{
			Workers: 8,
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// GameFormat builds the immutable format definition from configuration.
func (c *Config) GameFormat() *format.Format {
	return format.New(c.Format.Name, c.Format.AllowedSets, c.Format.BannedCards)
}

// GetHTTPTimeout returns the HTTP timeout as a duration.
func (c *Config) GetHTTPTimeout() (time.Duration, error) {
	return time.ParseDuration(c.HTTP.Timeout)
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if len(c.Format.AllowedSets) == 0 {
		return fmt.Errorf("format %q has no allowed sets", c.Format.Name)
	}
	if _, err := time.ParseDuration(c.HTTP.Timeout); err != nil {
		return fmt.Errorf("invalid http timeout %q: %w", c.HTTP.Timeout, err)
	}
	if c.HTTP.MaxTries < 1 {
		return fmt.Errorf("http max tries must be at least 1: %d", c.HTTP.MaxTries)
	}
	if c.Cache.MaxSize < 0 {
		return fmt.Errorf("cache max size cannot be negative: %d", c.Cache.MaxSize)
	}
	if c.Check.Workers < 1 {
		return fmt.Errorf("check workers must be at least 1: %d", c.Check.Workers)
	}
	return nil
}

// DefaultPath returns the default path to the configuration file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".rf-companion")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from the given path. An empty path uses
// the default location. Returns the default config if the file doesn't
// exist.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the given path. An empty path uses
// the default location.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
