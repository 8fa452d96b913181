// Package version provides the version token model and semver matching.
package version

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// System is the special version string naming a runtime installed outside nvm.
const System = "system"

// tokenPattern splits "<name>-<number>" tokens such as "iojs-v1.1.0".
// Anchored so prerelease suffixes ("v4.0.0-rc.1") are not mistaken for a name.
var tokenPattern = regexp.MustCompile(`^(\w+)-(.+)$`)

// Token is a version token split into its distribution name and numeric part.
type Token struct {
	Name   string // Distribution name (e.g., "iojs"); empty for plain node versions
	Number string // Semver string or range (e.g., "v1.1.0", ">=0.10")
}

// Split splits a candidate token or specifier into name and number.
// Tokens without a "<name>-" prefix are returned whole as the number.
func Split(token string) Token {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil {
		return Token{Number: token}
	}
	return Token{Name: m[1], Number: m[2]}
}

// Parse parses an installed version number such as "v0.10.26" or "0.10.26".
// A leading "v" is allowed; partial numbers such as "0.10" are rejected.
func Parse(number string) (*semver.Version, error) {
	return semver.StrictNewVersion(strings.TrimPrefix(number, "v"))
}

// Satisfies parses number and reports whether it satisfies the semver range or
// exact version expr. The parsed version is returned when it does.
// Unparseable numbers or expressions never satisfy.
func Satisfies(number, expr string) (*semver.Version, bool) {
	v, err := Parse(number)
	if err != nil {
		return nil, false
	}
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, false
	}
	if !c.Check(v) {
		return nil, false
	}
	return v, true
}
