// Package target locates and reads the installed distributable to
// patch. Discovery is deliberately simple glue: an explicit path wins,
// otherwise a list of conventional install locations is probed.
package target

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"
)

// Sentinel errors for target resolution.
var (
	// ErrNotFound means no installed target could be located.
	ErrNotFound = errors.New("target program not found")
	// ErrNotJavaScript rejects a resolved file whose content is not
	// JavaScript, before any parse is attempted.
	ErrNotJavaScript = errors.New("target file is not JavaScript")
	// ErrDirectoryPath indicates the resolved path is a directory.
	ErrDirectoryPath = errors.New("path points to a directory")
	// ErrEmptyPath indicates an empty explicit path argument.
	ErrEmptyPath = errors.New("path is empty")
)

// distName is the vendor's distributable file name.
const distName = "cli.js"

// installGlobs are conventional install locations, probed in order.
// Home-relative entries are expanded against the user's home directory.
var installGlobs = []string{
	"~/.claude/local/node_modules/@anthropic-ai/claude-code/" + distName,
	"~/.nvm/versions/node/*/lib/node_modules/@anthropic-ai/claude-code/" + distName,
	"~/.local/share/fnm/node-versions/*/installation/lib/node_modules/@anthropic-ai/claude-code/" + distName,
	"/usr/local/lib/node_modules/@anthropic-ai/claude-code/" + distName,
	"/opt/homebrew/lib/node_modules/@anthropic-ai/claude-code/" + distName,
}

// Info describes a resolved target file.
type Info struct {
	Path     string
	Size     int64
	Language string
}

// Locate resolves the target path. A non-empty explicit path is
// normalized and checked; otherwise the conventional locations are
// probed in order and the first existing file wins.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		return resolveExplicit(explicit)
	}

	home, homeErr := os.UserHomeDir()

	for _, pattern := range installGlobs {
		if strings.HasPrefix(pattern, "~/") {
			if homeErr != nil {
				continue
			}

			pattern = filepath.Join(home, pattern[2:])
		}

		matches, globErr := filepath.Glob(pattern)
		if globErr != nil {
			continue
		}

		for _, match := range matches {
			info, statErr := os.Stat(match)
			if statErr == nil && !info.IsDir() {
				return match, nil
			}
		}
	}

	return "", fmt.Errorf("%w: probed %d install locations (use an explicit path)", ErrNotFound, len(installGlobs))
}

func resolveExplicit(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}

	absPath, absErr := filepath.Abs(filepath.Clean(path))
	if absErr != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, absErr)
	}

	info, statErr := os.Stat(absPath)
	if statErr != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, absPath)
	}

	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrDirectoryPath, absPath)
	}

	return absPath, nil
}

// Read loads the target's full content and sanity-checks that it is
// JavaScript before anything downstream parses or edits it.
func Read(path string) ([]byte, Info, error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, Info{}, fmt.Errorf("read target %s: %w", path, readErr)
	}

	lang := enry.GetLanguage(filepath.Base(path), data)
	if lang != "JavaScript" && lang != "TypeScript" {
		return nil, Info{}, fmt.Errorf("%w: %s detected as %q", ErrNotJavaScript, path, lang)
	}

	return data, Info{Path: path, Size: int64(len(data)), Language: lang}, nil
}
