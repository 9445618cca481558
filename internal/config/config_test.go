package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RECITE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "espeak-ng", cfg.Speech.Command)
	assert.Equal(t, 1.0, cfg.Speech.Rate)
	assert.Equal(t, 10*time.Second, cfg.Dictionary.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Vocab.Path)
	assert.Empty(t, cfg.Dictionary.Path)
	assert.Empty(t, cfg.Dictionary.URL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RECITE_CONFIG", "")
	t.Setenv("RECITE_VOCAB_PATH", "/tmp/words.csv")
	t.Setenv("RECITE_SPEECH_COMMAND", "say")
	t.Setenv("RECITE_RATE", "1.2")
	t.Setenv("RECITE_DICT_TIMEOUT", "3s")
	t.Setenv("RECITE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/words.csv", cfg.Vocab.Path)
	assert.Equal(t, "say", cfg.Speech.Command)
	assert.Equal(t, 1.2, cfg.Speech.Rate)
	assert.Equal(t, 3*time.Second, cfg.Dictionary.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recite.yaml")
	yaml := `
vocab:
  path: /data/toeic.csv
dictionary:
  url: https://example.com/dict.json
  timeout: 5s
speech:
  command: espeak
  rate: 0.8
  chinese_voice: cmn
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("RECITE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/toeic.csv", cfg.Vocab.Path)
	assert.Equal(t, "https://example.com/dict.json", cfg.Dictionary.URL)
	assert.Equal(t, 5*time.Second, cfg.Dictionary.Timeout)
	assert.Equal(t, "espeak", cfg.Speech.Command)
	assert.Equal(t, 0.8, cfg.Speech.Rate)
	assert.Equal(t, "cmn", cfg.Speech.ChineseVoice)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvBeatsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speech:\n  rate: 0.8\n"), 0o644))
	t.Setenv("RECITE_CONFIG", path)
	t.Setenv("RECITE_RATE", "1.35")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1.35, cfg.Speech.Rate)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("RECITE_CONFIG", filepath.Join(t.TempDir(), "nonexistent.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "parseLevel(%q)", tt.in)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recite.log")

	logger := NewLogger(LogConfig{Level: "debug", File: path})
	logger.Info("hello", "k", "v")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "k=v")
}
