package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoPathIsNop(t *testing.T) {
	logger, err := New("", "debug")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "chemiz.log")

	logger, err := New(path, "warn")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("journal write failed")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "journal write failed")
	assert.Contains(t, string(data), `"app":"chemiz"`)
	assert.NotContains(t, string(data), "dropped")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.Error(t, err)
}
