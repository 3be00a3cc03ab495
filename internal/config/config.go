// Package config loads the Lambda front end settings from an optional YAML
// file, an optional .env file and COMPREHEND_ environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pricofy/comprehend-go/internal/chunker"
	"github.com/pricofy/comprehend-go/internal/logger"
)

const envPrefix = "COMPREHEND_"

// Config holds the front end settings.
type Config struct {
	// Region defaults to AWS_REGION, which the Lambda runtime sets.
	Region string `yaml:"region"`

	// Endpoint overrides the regional Comprehend endpoint.
	Endpoint string `yaml:"endpoint"`

	// ValidateRequests turns on client-side request validation.
	ValidateRequests bool `yaml:"validate_requests"`

	// Concurrency bounds the batches in flight per invocation.
	Concurrency int `yaml:"concurrency"`

	MaxDocuments int `yaml:"max_documents"`
	MaxBytes     int `yaml:"max_bytes"`

	Environment string `yaml:"environment"` // development, staging, production
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Region:       os.Getenv("AWS_REGION"),
		Concurrency:  4,
		MaxDocuments: chunker.DefaultMaxDocuments,
		MaxBytes:     chunker.DefaultMaxBytes,
		Environment:  "production",
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv(envPrefix + "CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	setString(&c.Region, "REGION")
	setString(&c.Endpoint, "ENDPOINT")
	setString(&c.Environment, "ENVIRONMENT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFormat, "LOG_FORMAT")

	if v, ok := lookup("VALIDATE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sVALIDATE: %w", envPrefix, err)
		}
		c.ValidateRequests = b
	}
	for name, dst := range map[string]*int{
		"CONCURRENCY":   &c.Concurrency,
		"MAX_DOCUMENTS": &c.MaxDocuments,
		"MAX_BYTES":     &c.MaxBytes,
	} {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
		}
		*dst = n
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	return v, ok && v != ""
}

func setString(dst *string, name string) {
	if v, ok := lookup(name); ok {
		*dst = v
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if c.Concurrency < 1 {
		errs = append(errs, errors.New("concurrency must be at least 1"))
	}
	if c.MaxDocuments < 1 || c.MaxDocuments > chunker.DefaultMaxDocuments {
		errs = append(errs, fmt.Errorf("max documents must be between 1 and %d", chunker.DefaultMaxDocuments))
	}
	if c.MaxBytes < 1 {
		errs = append(errs, errors.New("max bytes must be at least 1"))
	}

	switch c.Environment {
	case "development", "staging", "production":
	default:
		errs = append(errs, fmt.Errorf("environment must be one of: development, staging, production (got: %s)", c.Environment))
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log format must be json or console (got: %s)", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%w", errors.Join(errs...))
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoggerOptions maps the logging settings onto logger options.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.FromEnv()
	opts.Level = c.LogLevel
	opts.Format = c.LogFormat
	opts.StaticFields = map[string]string{"environment": c.Environment}
	return opts
}
