package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config represents the main application configuration structure
// containing all configuration sections
type Config struct {
	Server    ServerConfig    `toml:"server"`    // HTTP server settings
	Logging   LoggingConfig   `toml:"logging"`   // Application logging settings
	Catalog   CatalogConfig   `toml:"catalog"`   // Airport catalog source
	Recommend RecommendConfig `toml:"recommend"` // Recommendation engine settings
	Storage   StorageConfig   `toml:"storage"`   // Query history persistence
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port               int      `toml:"port"`                  // Primary HTTP port for the server
	Host               string   `toml:"host"`                  // Host address to bind to (e.g., 127.0.0.1 for localhost only, 0.0.0.0 for all interfaces)
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`  // List of origins allowed for CORS requests (use ["*"] for all origins)
	ReadTimeoutSecs    int      `toml:"read_timeout_seconds"`  // Maximum duration for reading the entire request (0 = no timeout)
	WriteTimeoutSecs   int      `toml:"write_timeout_seconds"` // Maximum duration for writing the response (0 = no timeout)
	IdleTimeoutSecs    int      `toml:"idle_timeout_seconds"`  // Maximum duration to wait for the next request when keep-alives are enabled
	AdditionalPorts    []int    `toml:"additional_ports"`      // Additional HTTP ports to listen on
	StaticFilesDir     string   `toml:"static_files_dir"`      // Directory to serve the web UI from (empty = API only)
}

// LoggingConfig contains application logging configuration
type LoggingConfig struct {
	Level      string `toml:"level"`        // Log level: "debug", "info", "warn", or "error"
	Format     string `toml:"format"`       // Log format: "json" (structured) or "console" (human-readable)
	FilePath   string `toml:"file_path"`    // Optional log file, rotated by size
	MaxSizeMB  int    `toml:"max_size_mb"`  // Rotate after this many megabytes
	MaxBackups int    `toml:"max_backups"`  // Rotated files to keep
	MaxAgeDays int    `toml:"max_age_days"` // Days to keep rotated files
	Compress   bool   `toml:"compress"`     // Gzip rotated files
}

// CatalogConfig selects the airport dataset
type CatalogConfig struct {
	Path string `toml:"path"` // CSV or YAML airport file; empty uses the built-in catalog
}

// RecommendConfig contains recommendation engine settings
type RecommendConfig struct {
	PathPoints        int  `toml:"path_points"`        // Points returned for the route polyline (endpoints included)
	MagneticVariation bool `toml:"magnetic_variation"` // Include the magnetic course at the origin in bearing output
}

// StorageConfig contains query history persistence settings
type StorageConfig struct {
	HistoryEnabled  bool   `toml:"history_enabled"`    // Record every answered query
	SQLitePath      string `toml:"sqlite_path"`        // SQLite database file
	MaxHistoryInAPI int    `toml:"max_history_in_api"` // Maximum records returned by the history endpoint
}

// Default returns a configuration usable without any file
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               8080,
			Host:               "0.0.0.0",
			CORSAllowedOrigins: []string{"*"},
			ReadTimeoutSecs:    15,
			WriteTimeoutSecs:   15,
			IdleTimeoutSecs:    60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Recommend: RecommendConfig{
			PathPoints: 51,
		},
		Storage: StorageConfig{
			SQLitePath:      "data/seat-side.db",
			MaxHistoryInAPI: 100,
		},
	}
}

// Load loads the configuration from the specified file path. Keys missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	config := Default()

	// Check if the file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read the config file
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}

// searchPaths lists the config file locations in order of preference, without duplicates
func searchPaths(preferredPath string) []string {
	candidates := []string{
		preferredPath,         // User-specified path (if provided)
		"configs/config.toml", // configs/ folder
		"config.toml",         // Root directory
	}

	uniquePaths := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, path := range candidates {
		if path != "" && !seen[path] {
			uniquePaths = append(uniquePaths, path)
			seen[path] = true
		}
	}
	return uniquePaths
}

// LoadWithFallback loads the configuration by checking multiple locations in order of preference.
// Environment overrides are applied afterwards.
func LoadWithFallback(preferredPath string) (*Config, error) {
	uniquePaths := searchPaths(preferredPath)

	var lastErr error
	for _, path := range uniquePaths {
		if _, err := os.Stat(path); err == nil {
			// File exists, try to load it
			config, err := Load(path)
			if err != nil {
				lastErr = fmt.Errorf("failed to load config from %s: %w", path, err)
				continue
			}
			if err := config.ApplyEnv(); err != nil {
				return nil, err
			}
			return config, nil
		}
		lastErr = fmt.Errorf("config file not found: %s", path)
	}

	return nil, fmt.Errorf("config file not found in any of the expected locations: %v. Last error: %w", uniquePaths, lastErr)
}

// LoadOrDefault loads the first existing config file and falls back to Default only when none
// of the search locations exists. An explicitly requested path must exist, and a file that
// exists but fails to decode is an error.
func LoadOrDefault(preferredPath string) (*Config, error) {
	if preferredPath != "" {
		return LoadWithFallback(preferredPath)
	}

	for _, path := range searchPaths("") {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		config, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		if err := config.ApplyEnv(); err != nil {
			return nil, err
		}
		return config, nil
	}

	config := Default()
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// Environment variables that override file settings
const (
	EnvPort        = "SEATSIDE_PORT"
	EnvHost        = "SEATSIDE_HOST"
	EnvLogLevel    = "SEATSIDE_LOG_LEVEL"
	EnvCatalogPath = "SEATSIDE_CATALOG_PATH"
	EnvSQLitePath  = "SEATSIDE_SQLITE_PATH"
)

// ApplyEnv reads a .env file if present and applies SEATSIDE_* overrides.
// Variables already set in the process environment win over .env entries.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read .env file: %w", err)
	}

	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", EnvPort, v)
		}
		c.Server.Port = port
	}
	if v := os.Getenv(EnvHost); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvCatalogPath); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv(EnvSQLitePath); v != "" {
		c.Storage.SQLitePath = v
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate server config
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	// Validate AdditionalPorts
	portsSeen := make(map[int]bool)
	portsSeen[c.Server.Port] = true
	for _, p := range c.Server.AdditionalPorts {
		if p <= 0 || p > 65535 {
			return fmt.Errorf("invalid additional server port: %d", p)
		}
		if portsSeen[p] {
			return fmt.Errorf("duplicate port configured: %d (primary or additional)", p)
		}
		portsSeen[p] = true
	}

	if c.Server.ReadTimeoutSecs < 0 {
		return fmt.Errorf("invalid read timeout: %d", c.Server.ReadTimeoutSecs)
	}
	if c.Server.WriteTimeoutSecs < 0 {
		return fmt.Errorf("invalid write timeout: %d", c.Server.WriteTimeoutSecs)
	}
	if c.Server.IdleTimeoutSecs < 0 {
		return fmt.Errorf("invalid idle timeout: %d", c.Server.IdleTimeoutSecs)
	}

	if err := c.ValidateLogging(); err != nil {
		return err
	}
	if err := c.ValidateRecommend(); err != nil {
		return err
	}
	return c.ValidateStorage()
}

// ValidateLogging validates the logging configuration
func (c *Config) ValidateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "":
		c.Logging.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "":
		c.Logging.Format = "console"
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logging.Format)
	}

	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings must be >= 0")
	}
	return nil
}

// ValidateRecommend validates the recommendation engine configuration
func (c *Config) ValidateRecommend() error {
	if c.Recommend.PathPoints == 0 {
		c.Recommend.PathPoints = 51
	}
	if c.Recommend.PathPoints < 2 || c.Recommend.PathPoints > 1000 {
		return fmt.Errorf("path_points must be between 2 and 1000: %d", c.Recommend.PathPoints)
	}
	return nil
}

// ValidateStorage validates the history storage configuration
func (c *Config) ValidateStorage() error {
	if !c.Storage.HistoryEnabled {
		return nil
	}
	if c.Storage.SQLitePath == "" {
		return fmt.Errorf("storage sqlite_path is required when history is enabled")
	}
	if c.Storage.MaxHistoryInAPI <= 0 {
		c.Storage.MaxHistoryInAPI = 100
	}
	return nil
}
