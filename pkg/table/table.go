// Package table renders columns of strings as aligned text tables, with
// optional wrapping into width-limited blocks.
package table

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const defaultWindow = 150

type formatConfig struct {
	floatingNames []string
	window        int
}

// FormatOption configures Format.
type FormatOption func(*formatConfig)

// WithFloatingNames prepends a gutter column that is repeated at the start
// of every wrapped block. It must have one entry per row.
func WithFloatingNames(names []string) FormatOption {
	return func(c *formatConfig) {
		c.floatingNames = names
	}
}

// WithWindow caps the character width of each block of columns. Columns
// that do not fit continue in a new block below.
func WithWindow(window int) FormatOption {
	return func(c *formatConfig) {
		c.window = window
	}
}

// Format renders the given columns as an aligned table. All columns must
// have the same number of rows. Cells are right-justified within their
// column; floating names are left-justified.
func Format(columns [][]string, opts ...FormatOption) (string, error) {
	cfg := formatConfig{window: defaultWindow}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(columns) == 0 {
		return "", nil
	}
	rows := len(columns[0])
	for i, col := range columns {
		if len(col) != rows {
			return "", goerr.New("all columns should have the same number of rows",
				goerr.V("column", i), goerr.V("rows", len(col)), goerr.V("expected", rows))
		}
	}
	if cfg.floatingNames != nil && len(cfg.floatingNames) != rows {
		return "", goerr.New("floating names should have one entry per row",
			goerr.V("names", len(cfg.floatingNames)), goerr.V("rows", rows))
	}

	floatWidth := 0
	for _, n := range cfg.floatingNames {
		if len(n) > floatWidth {
			floatWidth = len(n)
		}
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		for _, cell := range col {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Greedily pack columns into blocks no wider than the window. A block
	// always holds at least one column.
	var blocks [][]int
	var current []int
	used := floatWidth
	for i := range columns {
		cost := widths[i] + 1
		if len(current) > 0 && used+cost > cfg.window {
			blocks = append(blocks, current)
			current = nil
			used = floatWidth
		}
		current = append(current, i)
		used += cost
	}
	blocks = append(blocks, current)

	var lines []string
	for _, block := range blocks {
		for r := 0; r < rows; r++ {
			var sb strings.Builder
			if cfg.floatingNames != nil {
				sb.WriteString(pad(cfg.floatingNames[r], floatWidth, false))
			}
			for _, c := range block {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(pad(columns[c][r], widths[c], true))
			}
			lines = append(lines, sb.String())
		}
	}

	return strings.Join(lines, "\n"), nil
}

// TruncateStrings shortens every value longer than width, replacing the
// tail with "...".
func TruncateStrings(vals []string, width int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		if len(v) > width {
			v = v[:width-3] + "..."
		}
		out[i] = v
	}
	return out
}

// FormatList renders values as "[a, b, c]". Lists longer than limit are
// cut after limit entries and terminated with "...".
func FormatList(vals []string, limit int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	shown := vals
	truncated := false
	if len(vals) > limit {
		shown = vals[:limit]
		truncated = true
	}
	for i, v := range shown {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v)
	}
	if truncated {
		sb.WriteString(", ...")
	}
	sb.WriteByte(']')
	return sb.String()
}

func pad(s string, width int, right bool) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if right {
		return fill + s
	}
	return s + fill
}
