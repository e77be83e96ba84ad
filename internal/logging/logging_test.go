package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellz/internal/config"
)

func TestNew_DefaultFileInDataDir(t *testing.T) {
	dir := t.TempDir()
	logger, closer, err := New(config.LogConfig{Level: "debug", Format: "text"}, dir)
	require.NoError(t, err)

	logger.WithField("deck", "words").Debug("loaded")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded")
	assert.Contains(t, string(data), "deck=words")
}

func TestNew_JSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.json")
	logger, closer, err := New(config.LogConfig{Level: "info", Format: "json", File: path}, "")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.WithField("item", "rhythm").Warn("speech failed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug entries are filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "speech failed", entry["msg"])
	assert.Equal(t, "rhythm", entry["item"])
	assert.Equal(t, "warning", entry["level"])
}

func TestNew_Stderr(t *testing.T) {
	logger, closer, err := New(config.LogConfig{Level: "warn", Format: "text", File: Stderr}, "")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, logger.Out)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"}, t.TempDir())
	assert.Error(t, err)
}
