package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "jobs_data.csv", cfg.DataFile)
	assert.Equal(t, ".", cfg.ChartDir)
	assert.Equal(t, 200, cfg.DefaultJobCount)
	assert.Equal(t, "generator.log", cfg.GeneratorLogFile)
	assert.Empty(t, cfg.AnalyzerLogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.OTELCollectorURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JOBS_DATA_FILE", "/tmp/out.csv")
	t.Setenv("CHART_DIR", "/tmp/charts")
	t.Setenv("DEFAULT_JOB_COUNT", "50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out.csv", cfg.DataFile)
	assert.Equal(t, "/tmp/charts", cfg.ChartDir)
	assert.Equal(t, 50, cfg.DefaultJobCount)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigIgnoresBadInts(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "lots"},
		{"negative", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEFAULT_JOB_COUNT", tt.value)

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, 200, cfg.DefaultJobCount)
		})
	}
}
