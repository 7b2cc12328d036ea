package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestConsoleSplitsErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, closers, err := setup("debug", "", &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("chord resolved")
	logger.Error("device lost")

	assert.Contains(t, stdout.String(), "chord resolved")
	assert.NotContains(t, stdout.String(), "device lost")
	assert.Contains(t, stderr.String(), "device lost")
	assert.NotContains(t, stderr.String(), "chord resolved")
}

func TestLevelFiltersTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, _, err := setup("debug", "", &stdout, &stderr)
	require.NoError(t, err)

	logger.Log(context.Background(), LevelTrace, "key")
	assert.Empty(t, stdout.String())
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "braillekeys.log")
	var stdout, stderr bytes.Buffer
	logger, closers, err := setup("info", path, &stdout, &stderr)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Info("Monitoring device", "device", "kbd")
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Monitoring device")
	assert.Contains(t, stderr.String(), "Monitoring device")
	assert.Empty(t, stdout.String())
}

func TestWithKeepsRouting(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, _, err := setup("info", "", &stdout, &stderr)
	require.NoError(t, err)

	dev := logger.With("device", "kbd").WithGroup("chord")
	dev.Info("resolved", "dots", "dots-1")
	dev.Error("stuck")

	assert.Contains(t, stdout.String(), "device=kbd chord.dots=dots-1")
	assert.NotContains(t, stdout.String(), "stuck")
	assert.Contains(t, stderr.String(), "msg=stuck device=kbd")
}
