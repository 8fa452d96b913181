package output

import (
	"bytes"
	"strings"
	"text/tabwriter"
)

// emptyCell stands in for blank values so columns stay aligned.
const emptyCell = "-"

// table renders kubectl-style aligned columns using text/tabwriter.
type table struct {
	buf  bytes.Buffer
	w    *tabwriter.Writer
	rows int
}

// newTable starts a table with the given header columns.
// Settings: minwidth=0, tabwidth=0, padding=3, padchar=' ', flags=0
func newTable(columns ...string) *table {
	t := &table{}
	t.w = tabwriter.NewWriter(&t.buf, 0, 0, 3, ' ', 0)
	t.write(columns)
	return t
}

// add appends a data row; empty values are shown as "-".
func (t *table) add(values ...string) {
	cells := make([]string, len(values))
	for i, v := range values {
		if v == "" {
			v = emptyCell
		}
		cells[i] = v
	}
	t.write(cells)
	t.rows++
}

func (t *table) write(cells []string) {
	_, _ = t.w.Write([]byte(strings.Join(cells, "\t") + "\n"))
}

// String flushes the writer and returns the table.
// A table without data rows renders as an empty string.
func (t *table) String() string {
	if t.rows == 0 {
		return ""
	}
	_ = t.w.Flush()
	return strings.TrimSuffix(t.buf.String(), "\n")
}
