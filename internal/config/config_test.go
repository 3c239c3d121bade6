package config

import (
	"testing"

	"launchdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "NOTES_FILE", "DATASET_SOURCE", "DATASET_FILE",
		"DATASET_TABLE", "DATABASE_URL", "PPROF_PORT", "PPROF_ENABLED", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8050", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, SourceFile, cfg.Data.Source)
	assert.Equal(t, DefaultDatasetFile, cfg.Data.File)
	assert.False(t, cfg.Profiling.Enabled)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric port", map[string]string{"PORT": "http"}},
		{"unknown gin mode", map[string]string{"GIN_MODE": "loud"}},
		{"unknown source", map[string]string{"DATASET_SOURCE": "s3"}},
		{"postgres without url", map[string]string{"DATASET_SOURCE": "postgres"}},
		{"pprof on dashboard port", map[string]string{"PPROF_ENABLED": "true", "PPROF_PORT": "8050"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATASET_SOURCE", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://localhost/launches?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourcePostgres, cfg.Data.Source)
	assert.Equal(t, "launch_records", cfg.Data.Table)
}
