// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// appConfigDir is the path fragment that marks a user-level config location.
var appConfigDir = filepath.Join(".config", "go-redtape")

// ForConfigNotFound suggests --config, or creating the user-level config
// when one of the searched paths is in the app config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, appConfigDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTemplateNotFound lists the templates that can be selected by name.
func ForTemplateNotFound(available []string) string {
	return forChoices(available, "; or pass a path to an .html file")
}

// ForStyleNotFound lists the stylesheets that can be selected by name.
func ForStyleNotFound(available []string) string {
	return forChoices(available, "")
}

// ForFencedMode lists the accepted --fenced values.
func ForFencedMode(modes []string) string {
	return forChoices(modes, "")
}

// ForRenderer lists the accepted --renderer values.
func ForRenderer(renderers []string) string {
	return forChoices(renderers, "")
}

// ForChromaStyle points at the chroma style gallery.
func ForChromaStyle() string {
	return format("see https://xyproto.github.io/splash/docs/ for style names")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetsTarget explains how to pick another export location.
func ForAssetsTarget() string {
	return format("pass a directory: rt assets <dir>")
}

// ForUsage points at the help for a command.
func ForUsage(command string) string {
	return format("run 'rt help " + command + "' for usage")
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

func forChoices(choices []string, extra string) string {
	if len(choices) == 0 {
		return ""
	}
	return format("available: " + strings.Join(choices, ", ") + extra)
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
