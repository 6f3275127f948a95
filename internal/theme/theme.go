// Package theme resolves user styling input into validated color
// literals. Values are checked against an allow-list of presets or a
// strict hex pattern before they may be embedded into the target
// program's text; anything else is rejected up front, so arbitrary
// input can never reach the patch editor.
package theme

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrInvalidColor rejects a styling value that is neither a known preset
// nor a #RGB/#RRGGBB literal. Checked before any file access.
var ErrInvalidColor = errors.New("invalid color value")

// hexPattern is the only raw color form accepted for embedding.
var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// presets maps fixed color names onto hex triplets.
var presets = map[string]string{
	"gray":    "#808080",
	"dim":     "#5C5C5C",
	"red":     "#CD5C5C",
	"orange":  "#D2691E",
	"yellow":  "#B8860B",
	"green":   "#2E8B57",
	"cyan":    "#008B8B",
	"blue":    "#4169E1",
	"purple":  "#9370DB",
	"magenta": "#C71585",
	"white":   "#FFFFFF",
}

// Resolve maps a styling input to the hex literal to embed. The empty
// string resolves to itself, meaning "leave this site alone". Preset
// names are case-insensitive.
func Resolve(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	if hex, ok := presets[strings.ToLower(input)]; ok {
		return hex, nil
	}

	if hexPattern.MatchString(input) {
		return strings.ToUpper(input), nil
	}

	return "", fmt.Errorf("%w: %q (want a preset name or #RGB/#RRGGBB)", ErrInvalidColor, input)
}

// PresetNames lists the known preset names in sorted order, for help
// text and error messages.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
