package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LanceVCS/claude-thinking-toggle/internal/patch"
	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
	"github.com/LanceVCS/claude-thinking-toggle/internal/theme"
)

func TestExitCode_Mapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitAmbiguous, ExitCode(fmt.Errorf("visibility: %w", sites.ErrAmbiguous)))
	assert.Equal(t, ExitVerifyFailed, ExitCode(fmt.Errorf("run: %w", patch.ErrVerificationFailed)))
	assert.Equal(t, ExitAlreadyPatched, ExitCode(patch.ErrAlreadyPatched))
}

func TestResolveStyle_DirectColors(t *testing.T) {
	t.Parallel()

	header, content, err := resolveStyle(styleInputs{headerColor: "orange", contentColor: "#00aa00"})

	require.NoError(t, err)
	assert.Equal(t, "#D2691E", header)
	assert.Equal(t, "#00AA00", content)
}

func TestResolveStyle_ThemeSuppliesBothSides(t *testing.T) {
	t.Parallel()

	header, content, err := resolveStyle(styleInputs{themeName: "green"})

	require.NoError(t, err)
	assert.Equal(t, "#2E8B57", header)
	assert.Equal(t, "#2E8B57", content)
}

func TestResolveStyle_FlagOverridesTheme(t *testing.T) {
	t.Parallel()

	header, content, err := resolveStyle(styleInputs{themeName: "green", headerColor: "#111111"})

	require.NoError(t, err)
	assert.Equal(t, "#111111", header)
	assert.Equal(t, "#2E8B57", content)
}

func TestResolveStyle_ThemeFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "themes.json")

	require.NoError(t, os.WriteFile(path, []byte(`{"themes":{"ocean":{"header":"blue","content":"cyan"}}}`), 0o644))

	header, content, err := resolveStyle(styleInputs{themeName: "ocean", themeFile: path})

	require.NoError(t, err)
	assert.Equal(t, "#4169E1", header)
	assert.Equal(t, "#008B8B", content)
}

func TestResolveStyle_UnknownTheme(t *testing.T) {
	t.Parallel()

	_, _, err := resolveStyle(styleInputs{themeName: "nonexistent"})

	require.ErrorIs(t, err, theme.ErrThemeUnknown)
}

func TestResolveStyle_InvalidColorFailsFast(t *testing.T) {
	t.Parallel()

	_, _, err := resolveStyle(styleInputs{headerColor: `red"};alert(1);//`})

	require.ErrorIs(t, err, theme.ErrInvalidColor)
}

func TestResolveStyle_EmptyInputsMeanNoColoring(t *testing.T) {
	t.Parallel()

	header, content, err := resolveStyle(styleInputs{})

	require.NoError(t, err)
	assert.Empty(t, header)
	assert.Empty(t, content)
}
