// Package config provides unified configuration loading for the outline tools.
// Supports YAML files, .env files, environment variables, and CLI overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the outline tools.
type Config struct {
	Batch         BatchConfig         `yaml:"batch"`
	Lexicon       LexiconConfig       `yaml:"lexicon"`
	Server        ServerConfig        `yaml:"server"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// BatchConfig holds directory batch settings.
type BatchConfig struct {
	InputDir   string        `yaml:"input_dir"`
	OutputDir  string        `yaml:"output_dir"`
	Workers    int           `yaml:"workers"`
	DocTimeout time.Duration `yaml:"doc_timeout"`
	Validate   bool          `yaml:"validate"`
}

// LexiconConfig holds the optional stop-word list location.
type LexiconConfig struct {
	StopWordsPath string `yaml:"stopwords_path"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr             string        `yaml:"addr"`
	MaxUploadBytes   int64         `yaml:"max_upload_bytes"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file, the .env file in the working
// directory, and environment overrides.
func Load(path string) (*Config, error) {
	return LoadWithEnvFile(path, ".env")
}

// LoadWithEnvFile is Load with an explicit .env location. A missing .env
// file is not an error.
func LoadWithEnvFile(path, envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration matching the container layout.
func DefaultConfig() *Config {
	return &Config{
		Batch: BatchConfig{
			InputDir:   "/app/input",
			OutputDir:  "/app/output",
			Workers:    runtime.NumCPU(),
			DocTimeout: 60 * time.Second,
		},
		Server: ServerConfig{
			Addr:             ":8080",
			MaxUploadBytes:   50 << 20,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     90 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Batch.InputDir == "" || c.Batch.OutputDir == "" {
		return fmt.Errorf("input and output directories are required")
	}

	if c.Batch.Workers < 1 {
		return fmt.Errorf("invalid worker count: %d", c.Batch.Workers)
	}

	if c.Batch.DocTimeout <= 0 {
		return fmt.Errorf("invalid document timeout: %s", c.Batch.DocTimeout)
	}

	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid max upload size: %d", c.Server.MaxUploadBytes)
	}

	if c.Observability.LogFormat != "json" && c.Observability.LogFormat != "console" {
		return fmt.Errorf("invalid log format: %s", c.Observability.LogFormat)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("OUTLINE_INPUT_DIR"); v != "" {
		cfg.Batch.InputDir = v
	}

	if v := os.Getenv("OUTLINE_OUTPUT_DIR"); v != "" {
		cfg.Batch.OutputDir = v
	}

	if v := os.Getenv("OUTLINE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("OUTLINE_WORKERS: %w", err)
		}
		cfg.Batch.Workers = n
	}

	if v := os.Getenv("OUTLINE_DOC_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("OUTLINE_DOC_TIMEOUT: %w", err)
		}
		cfg.Batch.DocTimeout = d
	}

	if v := os.Getenv("OUTLINE_VALIDATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("OUTLINE_VALIDATE: %w", err)
		}
		cfg.Batch.Validate = b
	}

	if v := os.Getenv("OUTLINE_STOPWORDS"); v != "" {
		cfg.Lexicon.StopWordsPath = v
	}

	if v := os.Getenv("OUTLINE_HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}

	if v := os.Getenv("OUTLINE_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("OUTLINE_MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.Server.MaxUploadBytes = n
	}

	if v := os.Getenv("OUTLINE_LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("OUTLINE_LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = strings.ToLower(v)
	}

	return nil
}
