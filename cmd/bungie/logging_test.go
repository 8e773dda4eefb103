package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_WritesToFile(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	logPath := filepath.Join(t.TempDir(), "bungie.log")

	require.NoError(t, setupLogging("info", logPath))
	slog.Info("hello world", "endpoint", "Destiny2.GetProfile")
	slog.Debug("hidden")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO: hello world (endpoint='Destiny2.GetProfile')")
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLogging_RejectsUnknownLevel(t *testing.T) {
	assert.Error(t, setupLogging("verbose", ""))
}

func TestSimpleHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&simpleHandler{level: slog.LevelDebug, writer: &buf}).With("module", "User")

	logger.Debug("calling")

	assert.Equal(t, "DEBUG: calling (module='User')\n", buf.String())
}
