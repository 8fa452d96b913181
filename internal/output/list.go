package output

import (
	"strings"

	"github.com/ivoronin/nvmmatch/internal/listing"
)

// InstalledList implements Formatter for `nvm list` contents.
// Versions keep the order nvm printed them in.
type InstalledList struct {
	Versions []string        `json:"versions"`
	Aliases  []listing.Alias `json:"aliases"`
}

// NewInstalledList parses raw `nvm list` output.
func NewInstalledList(raw string) *InstalledList {
	l := &InstalledList{
		Versions: listing.Parse(raw),
		Aliases:  listing.ParseAliases(raw),
	}
	if l.Versions == nil {
		l.Versions = []string{}
	}
	if l.Aliases == nil {
		l.Aliases = []listing.Alias{}
	}
	return l
}

// FormatText returns an installed versions table followed by an aliases table.
// Header: VERSION, then ALIAS, TARGET, RESOLVED, DEFAULT
func (l *InstalledList) FormatText() string {
	versions := newTable("VERSION")
	for _, v := range l.Versions {
		versions.add(v)
	}

	aliases := newTable("ALIAS", "TARGET", "RESOLVED", "DEFAULT")
	for _, a := range l.Aliases {
		def := ""
		if a.Default {
			def = "yes"
		}
		aliases.add(a.Name, a.Target, a.Resolved, def)
	}

	var sections []string
	for _, s := range []string{versions.String(), aliases.String()} {
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n\n")
}

// FormatJSON returns {"versions": [...], "aliases": [...]}.
func (l *InstalledList) FormatJSON() ([]byte, error) {
	return marshalJSON(l, true)
}
