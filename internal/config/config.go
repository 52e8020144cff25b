// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for vinoteca.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.vinoteca/config.toml
//   - ~/.vinoteca/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete vinoteca configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version" json:"version"`

	// Server connection configuration
	Server ServerConfig `toml:"server" json:"server"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Logging configuration
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// ServerConfig contains backend connection configuration.
type ServerConfig struct {
	// BaseURL is the catalog backend base URL
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs is the timeout for catalog and refresh requests
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// AskTimeoutSecs is the timeout for /api/ask, which runs the full
	// retrieval pipeline server-side
	AskTimeoutSecs int `toml:"ask_timeout_secs" json:"ask_timeout_secs"`
	// AskRate limits ask requests per second issued by the client
	AskRate float64 `toml:"ask_rate" json:"ask_rate"`
}

// UIConfig contains UI behavior configuration.
type UIConfig struct {
	// ShowSources toggles the source list under assistant replies
	ShowSources bool `toml:"show_sources" json:"show_sources"`
	// ShowTimestamps toggles message timestamps in the transcript
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// PreviewChars is how many characters of the sheet preview a
	// catalog card shows before truncating
	PreviewChars int `toml:"preview_chars" json:"preview_chars"`
	// Theme selects the color theme: "auto", "dark", "light"
	Theme string `toml:"theme" json:"theme"`
}

// LoggingConfig contains file logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `toml:"level" json:"level"`
	// File is the log file path (empty = ~/.vinoteca/vinoteca.log)
	File string `toml:"file" json:"file"`
	// MaxSizeMB is the size at which the log file rotates
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb"`
	// MaxBackups is how many rotated files to keep
	MaxBackups int `toml:"max_backups" json:"max_backups"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			BaseURL:        "http://127.0.0.1:5000",
			TimeoutSecs:    30,
			AskTimeoutSecs: 120,
			AskRate:        0.5,
		},
		UI: UIConfig{
			ShowSources:    true,
			ShowTimestamps: false,
			PreviewChars:   100,
			Theme:          "auto",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the vinoteca configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".vinoteca"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// A .env file in the working directory or config directory is read
// before environment overrides are applied.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := Default()
	var loadErr error

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	cfg, err = finishLoad(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// finishLoad applies env overrides, fills defaults, and validates.
func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv reads .env from the working directory, then the config
// directory. Existing environment variables win.
func loadDotEnv() {
	godotenv.Load()
	if dir, err := ConfigDir(); err == nil {
		godotenv.Load(filepath.Join(dir, ".env"))
	}
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from an explicit file path, picking
// the decoder by extension.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = LoadTOML(cfg, path)
	case ".json":
		err = LoadJSON(cfg, path)
	default:
		err = fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	return finishLoad(cfg)
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the TOML config file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// DEFAULTS AND VALIDATION
// =============================================================================

// SetDefaults fills zero-valued fields from the defaults.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaults.Server.BaseURL
	}
	if c.Server.TimeoutSecs == 0 {
		c.Server.TimeoutSecs = defaults.Server.TimeoutSecs
	}
	if c.Server.AskTimeoutSecs == 0 {
		c.Server.AskTimeoutSecs = defaults.Server.AskTimeoutSecs
	}
	if c.Server.AskRate == 0 {
		c.Server.AskRate = defaults.Server.AskRate
	}
	if c.UI.PreviewChars == 0 {
		c.UI.PreviewChars = defaults.UI.PreviewChars
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = defaults.Logging.MaxSizeMB
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = defaults.Logging.MaxBackups
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := url.Parse(c.Server.BaseURL); err != nil {
		return fmt.Errorf("server.base_url is not a valid URL: %w", err)
	}
	if !strings.HasPrefix(c.Server.BaseURL, "http://") && !strings.HasPrefix(c.Server.BaseURL, "https://") {
		return fmt.Errorf("server.base_url must start with http:// or https://: %q", c.Server.BaseURL)
	}
	if c.Server.TimeoutSecs < 0 {
		return fmt.Errorf("server.timeout_secs must not be negative: %d", c.Server.TimeoutSecs)
	}
	if c.Server.AskTimeoutSecs < 0 {
		return fmt.Errorf("server.ask_timeout_secs must not be negative: %d", c.Server.AskTimeoutSecs)
	}
	if c.Server.AskRate < 0 {
		return fmt.Errorf("server.ask_rate must not be negative: %f", c.Server.AskRate)
	}

	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be auto, dark, or light: %q", c.UI.Theme)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error: %q", c.Logging.Level)
	}

	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - VINOTECA_SERVER_URL: overrides server.base_url
//   - VINOTECA_THEME: overrides ui.theme
//   - VINOTECA_LOG_LEVEL: overrides logging.level
//   - VINOTECA_LOG_FILE: overrides logging.file
//   - VINOTECA_SHOW_SOURCES: set to "1"/"true" or "0"/"false"
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("VINOTECA_SERVER_URL"); u != "" {
		c.Server.BaseURL = u
	}
	if theme := os.Getenv("VINOTECA_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if level := os.Getenv("VINOTECA_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("VINOTECA_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if v := os.Getenv("VINOTECA_SHOW_SOURCES"); v != "" {
		c.UI.ShowSources = v == "1" || strings.ToLower(v) == "true"
	}
}

// =============================================================================
// GLOBAL INSTANCE
// =============================================================================

var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			if cfg == nil {
				cfg = Default()
			}
		}
		globalConfig = cfg
	}
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
}
