package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gnsadm/pkg/config"
)

func TestInitFileDestination(t *testing.T) {
	logDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	err := Init(logDir, cfg)
	require.NoError(t, err)

	slog.Info("probe", "run", "test")

	data, err := os.ReadFile(filepath.Join(logDir, "gnsadm.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"probe"`)
}

func TestInitFileDestinationTruncates(t *testing.T) {
	logDir := t.TempDir()
	logPath := filepath.Join(logDir, "gnsadm.log")
	require.NoError(t,
		os.WriteFile(logPath, []byte("old content\n"), 0644))

	cfg := config.LogConfig{Destination: "file"}
	require.NoError(t, Init(logDir, cfg))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old content",
		"log file should start fresh each run")
}

func TestInitBadLogDir(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	err := Init(filepath.Join(t.TempDir(), "absent"), cfg)
	assert.Error(t, err)
}

func TestInitStderrDestination(t *testing.T) {
	cfg := config.LogConfig{
		Format:      "text",
		Level:       "debug",
		Destination: "stderr",
	}
	assert.NoError(t, Init(t.TempDir(), cfg))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), tt.input)
	}
}
