package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"shenanigigs/jobstats/internal/analysis"
	"shenanigigs/jobstats/internal/charts"
	"shenanigigs/jobstats/internal/config"
	"shenanigigs/jobstats/internal/dataset"
	"shenanigigs/jobstats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setup(t *testing.T) (*config.Config, *dataset.Store, *analysis.Runner, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	logger := zaptest.NewLogger(t)
	cfg := &config.Config{
		DataFile: filepath.Join(dir, "jobs_data.csv"),
		ChartDir: filepath.Join(dir, "charts"),
	}
	var out bytes.Buffer
	runner := analysis.NewRunner(&out, charts.NewRenderer(cfg.ChartDir, logger), logger, cfg.DataFile)
	return cfg, dataset.NewStore(logger), runner, &out
}

func TestRunMissingFile(t *testing.T) {
	cfg, store, runner, out := setup(t)

	code := run(context.Background(), out, cfg, store, runner)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Run the generator first")
	assert.NotContains(t, out.String(), "SALARY ANALYSIS")

	_, err := os.Stat(cfg.ChartDir)
	assert.True(t, os.IsNotExist(err), "no artifacts should be produced")
}

func TestRunMalformedFile(t *testing.T) {
	cfg, store, runner, out := setup(t)
	require.NoError(t, os.WriteFile(cfg.DataFile, []byte("name,age\nx,1\n"), 0o644))

	code := run(context.Background(), out, cfg, store, runner)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Could not load data")

	_, err := os.Stat(cfg.ChartDir)
	assert.True(t, os.IsNotExist(err))
}

func TestRunAnalyzesFile(t *testing.T) {
	cfg, store, runner, out := setup(t)
	require.NoError(t, store.Write(context.Background(), cfg.DataFile, []models.JobRecord{
		{Title: "Backend Developer", Company: "Stripe", Location: "Remote", Salary: "$90k - $120k"},
		{Title: "Frontend Developer", Company: "Zoom", Location: "Remote", Salary: "$60k - $90k"},
	}))

	code := run(context.Background(), out, cfg, store, runner)
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Analysis complete!")

	for _, name := range []string{
		charts.SalaryDistributionFile,
		charts.TopLocationsFile,
		charts.TopCompaniesFile,
		charts.TitleKeywordsFile,
	} {
		_, err := os.Stat(filepath.Join(cfg.ChartDir, name))
		assert.NoError(t, err, name)
	}
}
