package listing

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Alias is a named shortcut shown by `nvm list`, e.g. "default -> 0.10 (-> v0.10.26)".
type Alias struct {
	Name     string `json:"name"`
	Target   string `json:"target"`
	Resolved string `json:"resolved,omitempty"` // Installed version the target points at, or "N/A"
	Default  bool   `json:"default,omitempty"`  // Line carried a "(default)" marker
}

// aliasExpr is the grammar of one alias line: name -> target [(-> resolved)] [(flag)]...
type aliasExpr struct {
	Name     string   `parser:"@Word Arrow"`
	Target   string   `parser:"@Word"`
	Resolved string   `parser:"( LParen Arrow @Word RParen )?"`
	Flags    []string `parser:"( LParen @Word RParen )*"`
}

// Arrow must precede Word so "->" is never swallowed as a name.
var aliasLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Word", Pattern: `[^\s()]+`},
})

var aliasParser = participle.MustBuild[aliasExpr](
	participle.Lexer(aliasLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseAliases extracts alias lines from raw `nvm list` output.
// Lines that are not aliases (installed versions, "current:" lines) are skipped.
func ParseAliases(raw string) []Alias {
	var aliases []Alias
	for _, line := range lines(raw) {
		expr, err := aliasParser.ParseString("", line)
		if err != nil {
			continue
		}
		alias := Alias{
			Name:     expr.Name,
			Target:   expr.Target,
			Resolved: expr.Resolved,
		}
		for _, flag := range expr.Flags {
			if flag == "default" {
				alias.Default = true
			}
		}
		aliases = append(aliases, alias)
	}
	return aliases
}
