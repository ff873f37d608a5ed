// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cinefind/cinefind/internal/constants"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
	// Default database path
	defaultDatabasePath = "./catalog.db"
)

// Config holds the application configuration.
// It supports loading from environment variables and JSON files.
type Config struct {
	// Server
	Port string `json:"PORT"`

	// API keys
	TMDBAPIKey string `json:"TMDB_API_KEY"`

	// Storage settings
	DatabasePath string `json:"DATABASE_PATH"`
	CacheBackend string `json:"CACHE_BACKEND"` // "memory" or "bolt"
	CachePath    string `json:"CACHE_PATH"`
	CacheSize    int    `json:"CACHE_SIZE"`

	// Localization
	DefaultLanguage   string   `json:"DEFAULT_LANGUAGE"`
	ReferenceLanguage string   `json:"REFERENCE_LANGUAGE"`
	SyncLanguages     []string `json:"SYNC_LANGUAGES"`

	// Ingestion
	SyncOnStart bool `json:"SYNC_ON_START"`
	SyncPages   int  `json:"SYNC_PAGES"`
}

// Load reads configuration from environment variables and an optional
// JSON file. Environment variables take precedence over file values.
func Load() (*Config, error) {
	// A missing .env file is not an error
	godotenv.Load()

	cfg := &Config{}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if key := os.Getenv("TMDB_API_KEY"); key != "" {
		c.TMDBAPIKey = key
	}
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		c.DatabasePath = path
	}
	if backend := os.Getenv("CACHE_BACKEND"); backend != "" {
		c.CacheBackend = backend
	}
	if path := os.Getenv("CACHE_PATH"); path != "" {
		c.CachePath = path
	}
	if size := os.Getenv("CACHE_SIZE"); size != "" {
		if parsed, err := strconv.Atoi(size); err == nil {
			c.CacheSize = parsed
		}
	}
	if lang := os.Getenv("DEFAULT_LANGUAGE"); lang != "" {
		c.DefaultLanguage = lang
	}
	if lang := os.Getenv("REFERENCE_LANGUAGE"); lang != "" {
		c.ReferenceLanguage = lang
	}
	if langs := os.Getenv("SYNC_LANGUAGES"); langs != "" {
		c.SyncLanguages = splitList(langs)
	}
	if sync := os.Getenv("SYNC_ON_START"); sync != "" {
		c.SyncOnStart = sync == "true" || sync == "1"
	}
	if pages := os.Getenv("SYNC_PAGES"); pages != "" {
		if parsed, err := strconv.Atoi(pages); err == nil {
			c.SyncPages = parsed
		}
	}
}

// Validate checks the configuration and applies defaults for missing
// optional fields.
func (c *Config) Validate() error {
	if c.Port == "" {
		c.Port = constants.DefaultPort
	}
	if c.DatabasePath == "" {
		c.DatabasePath = defaultDatabasePath
	}
	if c.CacheBackend == "" {
		c.CacheBackend = "memory"
	}
	if c.CacheBackend != "memory" && c.CacheBackend != "bolt" {
		return fmt.Errorf("unknown cache backend: %q", c.CacheBackend)
	}
	if c.CacheSize <= 0 {
		c.CacheSize = constants.DefaultCacheSize
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = constants.DefaultLanguage
	}
	if c.ReferenceLanguage == "" {
		c.ReferenceLanguage = constants.ReferenceLanguage
	}
	if len(c.SyncLanguages) == 0 {
		c.SyncLanguages = []string{c.DefaultLanguage}
	}
	if c.SyncPages <= 0 {
		c.SyncPages = 1
	}

	// TMDB_API_KEY is optional: search still works without the actor
	// filter and ingestion can be disabled
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
