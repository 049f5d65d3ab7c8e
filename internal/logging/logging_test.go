package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generator.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	logger, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	logger.Info("Generating job listings")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "previous run\n")
	assert.Contains(t, content, "INFO")
	assert.Contains(t, content, "Generating job listings")
	assert.Contains(t, content, "run_id")
	assert.NotContains(t, content, "hidden at info level")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}
