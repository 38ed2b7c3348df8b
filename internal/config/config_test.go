package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemiz/chemiz/internal/quiz"
)

// isolate runs the test in an empty directory with no user config and no
// CHEMIZ_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{
		"CHEMIZ_QUIZ_THEME", "CHEMIZ_QUIZ_MODE", "CHEMIZ_QUIZ_ADVANCE_CONCEPT",
		"CHEMIZ_QUIZ_SEED", "CHEMIZ_DATA_DATASET", "CHEMIZ_DATA_ILLUSTRATIONS",
		"CHEMIZ_STORE_DB", "CHEMIZ_LOG_FILE", "CHEMIZ_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "basic", cfg.Quiz.Theme)
	assert.Equal(t, "short", cfg.Quiz.Mode)
	assert.True(t, cfg.Quiz.AdvanceConcept)
	assert.Zero(t, cfg.Quiz.Seed)
	assert.Empty(t, cfg.Store.DB)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)

	theme, err := cfg.Quiz.ParsedTheme()
	require.NoError(t, err)
	assert.Equal(t, quiz.ThemeBasic, theme)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "chemiz.yaml"), `
quiz:
  theme: concept
  mode: choice
  advance_concept: false
  seed: 7
store:
  db: /tmp/journal.db
`)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "concept", cfg.Quiz.Theme)
	assert.Equal(t, "choice", cfg.Quiz.Mode)
	assert.False(t, cfg.Quiz.AdvanceConcept)
	assert.Equal(t, uint64(7), cfg.Quiz.Seed)
	assert.Equal(t, "/tmp/journal.db", cfg.Store.DB)
}

func TestLoad_XDGConfigHome(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "xdg", "chemiz", "chemiz.yaml"), "quiz:\n  mode: choice\n")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "choice", cfg.Quiz.Mode)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{File: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "quiz:\n  theme: concept\nlog:\n  level: debug\n")

	t.Setenv("CHEMIZ_QUIZ_THEME", "basic")
	t.Setenv("CHEMIZ_QUIZ_SEED", "99")
	t.Setenv("CHEMIZ_QUIZ_ADVANCE_CONCEPT", "false")

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)

	assert.Equal(t, "basic", cfg.Quiz.Theme)
	assert.Equal(t, uint64(99), cfg.Quiz.Seed)
	assert.False(t, cfg.Quiz.AdvanceConcept)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "CHEMIZ_STORE_DB=from-dotenv.db\nCHEMIZ_LOG_LEVEL=warn\n")

	// Real environment wins over .env.
	t.Setenv("CHEMIZ_LOG_LEVEL", "error")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv.db", cfg.Store.DB)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{"theme", map[string]string{"CHEMIZ_QUIZ_THEME": "hard"}, quiz.ErrUnknownTheme},
		{"mode", map[string]string{"CHEMIZ_QUIZ_MODE": "essay"}, quiz.ErrUnknownMode},
		{"log level", map[string]string{"CHEMIZ_LOG_LEVEL": "loud"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(Options{})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}
