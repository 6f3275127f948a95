package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LanceVCS/claude-thinking-toggle/internal/config"
	"github.com/LanceVCS/claude-thinking-toggle/internal/theme"
)

// styleInputs collects everything that can influence the requested
// colors: direct color flags, a theme name, and an optional theme file.
type styleInputs struct {
	headerColor  string
	contentColor string
	themeName    string
	themeFile    string
}

// resolveStyle turns the style inputs into validated header and content
// colors. A theme supplies defaults; explicit color values override the
// theme. Empty results mean the corresponding site is left untouched.
func resolveStyle(in styleInputs) (header, content string, err error) {
	var loaded map[string]theme.Theme

	if in.themeFile != "" {
		loaded, err = theme.LoadFile(in.themeFile)
		if err != nil {
			return "", "", err
		}
	}

	if in.themeName != "" {
		selected, selErr := theme.Select(in.themeName, loaded)
		if selErr != nil {
			return "", "", selErr
		}

		header = selected.Header
		content = selected.Content
	}

	if in.headerColor != "" {
		header, err = theme.Resolve(in.headerColor)
		if err != nil {
			return "", "", fmt.Errorf("header color: %w", err)
		}
	}

	if in.contentColor != "" {
		content, err = theme.Resolve(in.contentColor)
		if err != nil {
			return "", "", fmt.Errorf("content color: %w", err)
		}
	}

	return header, content, nil
}

// stringSetting prefers a flag the user actually set over the config
// file value.
func stringSetting(cmd *cobra.Command, flag, flagValue, configValue string) string {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}

	if flagValue != "" {
		return flagValue
	}

	return configValue
}

// mergedStyle builds the style inputs from command flags layered over
// the loaded config.
func mergedStyle(cmd *cobra.Command, cfg *config.Config, headerColor, contentColor, themeName, themeFile string) styleInputs {
	return styleInputs{
		headerColor:  stringSetting(cmd, "header-color", headerColor, cfg.HeaderColor),
		contentColor: stringSetting(cmd, "content-color", contentColor, cfg.ContentColor),
		themeName:    stringSetting(cmd, "theme", themeName, cfg.Theme),
		themeFile:    stringSetting(cmd, "theme-file", themeFile, cfg.ThemeFile),
	}
}
