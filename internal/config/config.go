package config

import (
	"os"
	"strconv"
	"strings"

	"launchdash/internal/errors"
)

// Dataset sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// DefaultDatasetFile is the relative path the dashboard reads when nothing else is configured
const DefaultDatasetFile = "spacex_launch_dash.csv"

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Database  DatabaseConfig
	Profiling ProfilingConfig
	LogLevel  string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port      string
	GinMode   string
	NotesFile string
}

// DataConfig selects where launch records come from
type DataConfig struct {
	Source string
	File   string
	Table  string
}

// DatabaseConfig holds database connection settings, used only by the postgres source
type DatabaseConfig struct {
	URL string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Database:  DatabaseConfig{URL: os.Getenv("DATABASE_URL")},
		Profiling: *loadProfilingConfig(),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:      getEnvOrDefault("PORT", "8050"),
		GinMode:   getEnvOrDefault("GIN_MODE", "release"),
		NotesFile: getEnvOrDefault("NOTES_FILE", ""),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		Source: strings.ToLower(getEnvOrDefault("DATASET_SOURCE", SourceFile)),
		File:   getEnvOrDefault("DATASET_FILE", DefaultDatasetFile),
		Table:  getEnvOrDefault("DATASET_TABLE", "launch_records"),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + strconv.Quote(config.Server.Port))
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be debug, release or test")
	}
	switch config.Data.Source {
	case SourceFile:
		if config.Data.File == "" {
			return errors.ConfigInvalid("DATASET_FILE is required for the file source")
		}
	case SourcePostgres:
		if config.Database.URL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required for the postgres source")
		}
		if config.Data.Table == "" {
			return errors.ConfigInvalid("DATASET_TABLE is required for the postgres source")
		}
	default:
		return errors.ConfigInvalid("DATASET_SOURCE must be file or postgres, got " + strconv.Quote(config.Data.Source))
	}
	if config.Profiling.Enabled && config.Profiling.Port == config.Server.Port {
		return errors.ConfigInvalid("PPROF_PORT must differ from PORT")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
