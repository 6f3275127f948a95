package theme

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var themeSchema string

// Sentinel errors for theme files.
var (
	// ErrThemeFileInvalid rejects a theme file that does not match the
	// embedded schema.
	ErrThemeFileInvalid = errors.New("theme file does not match schema")
	// ErrThemeUnknown means the requested theme name is not defined.
	ErrThemeUnknown = errors.New("unknown theme")
)

// Theme is one named pair of styling values. Either field may be empty,
// meaning the corresponding site is left alone.
type Theme struct {
	Header  string `json:"header"`
	Content string `json:"content"`
}

type themeFile struct {
	Themes map[string]Theme `json:"themes"`
}

// LoadFile reads and validates a user theme file. Every color in the
// file passes the same preset/hex validation as direct flag input, so a
// theme file cannot smuggle unvalidated text into the patch editor.
func LoadFile(path string) (map[string]Theme, error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("read theme file: %w", readErr)
	}

	schemaLoader := gojsonschema.NewStringLoader(themeSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, validateErr := gojsonschema.Validate(schemaLoader, docLoader)
	if validateErr != nil {
		return nil, fmt.Errorf("validate theme file: %w", validateErr)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrThemeFileInvalid, strings.Join(details, "; "))
	}

	var file themeFile
	if unmarshalErr := json.Unmarshal(data, &file); unmarshalErr != nil {
		return nil, fmt.Errorf("decode theme file: %w", unmarshalErr)
	}

	for name, th := range file.Themes {
		header, err := Resolve(th.Header)
		if err != nil {
			return nil, fmt.Errorf("theme %q header: %w", name, err)
		}

		content, err := Resolve(th.Content)
		if err != nil {
			return nil, fmt.Errorf("theme %q content: %w", name, err)
		}

		file.Themes[name] = Theme{Header: header, Content: content}
	}

	return file.Themes, nil
}

// Select resolves a theme name against the built-in presets (a preset
// name used as a theme colors both sites with the same value) or a set
// loaded from a theme file.
func Select(name string, loaded map[string]Theme) (Theme, error) {
	if th, ok := loaded[name]; ok {
		return th, nil
	}

	if hex, ok := presets[strings.ToLower(name)]; ok {
		return Theme{Header: hex, Content: hex}, nil
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrThemeUnknown, name)
}
