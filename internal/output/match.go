package output

import "github.com/ivoronin/nvmmatch/internal/resolver"

// MatchOutput implements Formatter for a resolution result.
// Text output is the activation command alone so it can be passed to eval.
type MatchOutput struct {
	Result *resolver.Result
}

// FormatText returns the shell directive activating the matched version.
func (m *MatchOutput) FormatText() string {
	return m.Result.Command
}

// FormatJSON returns {"version": ..., "command": ...}.
func (m *MatchOutput) FormatJSON() ([]byte, error) {
	return marshalJSON(m.Result, false)
}
