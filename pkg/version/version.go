// Package version exposes build metadata for the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Populated at build time via -ldflags. When built without ldflags the
// values fall back to module build info where available.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Init resolves build metadata from the embedded module info when the
// linker did not override the defaults.
func Init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == "unknown" {
				Commit = setting.Value
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = setting.Value
			}
		}
	}
}

// String renders the version line shown by the version command.
func String() string {
	return fmt.Sprintf("claude-thinking-toggle %s (commit %s, built %s)", Version, Commit, Date)
}
