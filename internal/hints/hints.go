// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForInputNotFound returns hints for a missing input file.
// Suggests the environment variables that select another input.
func ForInputNotFound(path string) string {
	hint := "create " + path + " or set TXT2MD_INPUT"
	if !strings.ContainsAny(path, "/\\") {
		hint += " (relative to the working directory)"
	}
	return format(hint + "; TXT2MD_INTERACTIVE=1 prompts for paths")
}

// ForInvalidEncoding returns a hint for input that is not UTF-8.
func ForInvalidEncoding() string {
	return format("input must be UTF-8 encoded; convert it first (e.g. iconv -t UTF-8)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests TXT2MD_CONFIG and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "set TXT2MD_CONFIG=/path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-txt2md") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForFragmentFindings returns a hint when converted text still parses as Markdown.
func ForFragmentFindings(count int) string {
	if count == 0 {
		return ""
	}
	return format("the characters involved are outside the escape set; review them before publishing")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
