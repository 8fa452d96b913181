// Package output renders resolver results and nvm listings for the terminal.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Format represents the output format type.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Formatter is implemented by everything the CLI prints.
type Formatter interface {
	FormatText() string
	FormatJSON() ([]byte, error)
}

// Render formats f and returns it as a string.
func Render(f Formatter, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := f.FormatJSON()
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return f.FormatText(), nil
	}
}

// Write renders f to w followed by a newline. Empty text output writes nothing.
func Write(w io.Writer, f Formatter, format Format) error {
	s, err := Render(f, format)
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// marshalJSON encodes v without HTML escaping so redirections such as "> /dev/null"
// stay readable. indent selects two-space indented output.
func marshalJSON(v interface{}, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
