package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{
		"REGION", "ENDPOINT", "VALIDATE", "CONCURRENCY", "MAX_DOCUMENTS",
		"MAX_BYTES", "ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT", "CONFIG_FILE",
	} {
		t.Setenv(envPrefix+name, "")
	}
	t.Setenv("AWS_REGION", "eu-west-1")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", cfg.Region)
	require.Equal(t, 4, cfg.Concurrency)
	require.Equal(t, 25, cfg.MaxDocuments)
	require.Equal(t, 5000, cfg.MaxBytes)
	require.False(t, cfg.ValidateRequests)
	require.False(t, cfg.IsDevelopment())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "comprehend.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
region: us-west-2
endpoint: http://localhost:4566
validate_requests: true
concurrency: 8
max_documents: 10
environment: staging
`), 0o600))

	t.Setenv("COMPREHEND_CONFIG_FILE", path)
	t.Setenv("COMPREHEND_CONCURRENCY", "2")
	t.Setenv("COMPREHEND_ENVIRONMENT", "development")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "us-west-2", cfg.Region)
	require.Equal(t, "http://localhost:4566", cfg.Endpoint)
	require.True(t, cfg.ValidateRequests)
	require.Equal(t, 2, cfg.Concurrency)
	require.Equal(t, 10, cfg.MaxDocuments)
	require.True(t, cfg.IsDevelopment())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, value, wantErr string
	}{
		{"non numeric", "COMPREHEND_MAX_BYTES", "lots", "COMPREHEND_MAX_BYTES"},
		{"bad bool", "COMPREHEND_VALIDATE", "maybe", "COMPREHEND_VALIDATE"},
		{"too many documents", "COMPREHEND_MAX_DOCUMENTS", "26", "max documents"},
		{"zero concurrency", "COMPREHEND_CONCURRENCY", "0", "concurrency"},
		{"unknown environment", "COMPREHEND_ENVIRONMENT", "qa", "environment"},
		{"unknown format", "COMPREHEND_LOG_FORMAT", "xml", "log format"},
		{"missing file", "COMPREHEND_CONFIG_FILE", "/does/not/exist.yaml", "config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoggerOptions(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "console"

	opts := cfg.LoggerOptions()
	require.Equal(t, "debug", opts.Level)
	require.Equal(t, "console", opts.Format)
	require.Equal(t, "production", opts.StaticFields["environment"])
}
