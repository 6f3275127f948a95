package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `target: /opt/app/cli.js
header_color: orange
content_color: "#00AA00"
theme: ""
`

	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/opt/app/cli.js", cfg.Target)
	assert.Equal(t, "orange", cfg.HeaderColor)
	assert.Equal(t, "#00AA00", cfg.ContentColor)
	assert.Empty(t, cfg.Theme)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")

	require.NoError(t, os.WriteFile(path, []byte("target: [unclosed\n"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("CLAUDE_TOGGLE_HEADER_COLOR", "purple")
	t.Setenv("CLAUDE_TOGGLE_THEME", "ocean")

	path := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(t, os.WriteFile(path, []byte("header_color: red\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "purple", cfg.HeaderColor)
	assert.Equal(t, "ocean", cfg.Theme)
}

func TestLoad_DefaultsWhenNothingSet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.yaml")

	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Empty(t, cfg.Target)
	assert.Empty(t, cfg.HeaderColor)
	assert.Empty(t, cfg.ContentColor)
	assert.Empty(t, cfg.ThemeFile)
}
