// Package listing parses the decorated output of `nvm list`.
package listing

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// activeMarker prefixes the currently active version in `nvm list` output.
var activeMarker = regexp.MustCompile(`(?m)^->`)

// decoration matches lines that describe aliases or the active runtime rather than
// an installed version. "system" is only ever reached through the system lookup.
var decoration = regexp.MustCompile(`current|system|->`)

// Parse extracts installed version tokens from raw `nvm list` output.
// Source order and duplicates are preserved.
func Parse(raw string) []string {
	text := activeMarker.ReplaceAllString(ansi.Strip(raw), "")

	var versions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || decoration.MatchString(line) {
			continue
		}
		versions = append(versions, line)
	}
	return versions
}

// lines returns the trimmed, non-empty lines of raw with escape codes removed.
func lines(raw string) []string {
	var out []string
	for _, line := range strings.Split(ansi.Strip(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
