// Package matrix provides dense and sparse float64 matrices whose rows and
// columns may carry names, so that elements and slices can be addressed by
// name instead of position.
package matrix

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/namedseq/pkg/names"
)

type config struct {
	rowNames []string
	colNames []string
	hasRows  bool
	hasCols  bool
}

// Option configures matrix construction.
type Option func(*config)

// WithRowNames attaches one name per row.
func WithRowNames(rowNames []string) Option {
	return func(c *config) {
		c.rowNames = rowNames
		c.hasRows = true
	}
}

// WithColNames attaches one name per column.
func WithColNames(colNames []string) Option {
	return func(c *config) {
		c.colNames = colNames
		c.hasCols = true
	}
}

func (c *config) build(rows, cols int) (rn, cn *names.Names, err error) {
	if c.hasRows {
		if len(c.rowNames) != rows {
			return nil, nil, goerr.New("number of row names should match number of rows",
				goerr.V("names", len(c.rowNames)), goerr.V("rows", rows))
		}
		rn = names.New(c.rowNames...)
	}
	if c.hasCols {
		if len(c.colNames) != cols {
			return nil, nil, goerr.New("number of column names should match number of columns",
				goerr.V("names", len(c.colNames)), goerr.V("columns", cols))
		}
		cn = names.New(c.colNames...)
	}
	return rn, cn, nil
}

func resolveName(n *names.Names, name string, axis string) (int, error) {
	if n == nil {
		return -1, goerr.New("matrix has no names on this axis", goerr.V("axis", axis))
	}
	i := n.Map(name)
	if i < 0 {
		return -1, goerr.New("name not found",
			goerr.V("name", name), goerr.V("axis", axis))
	}
	return i, nil
}

func resolveNames(n *names.Names, keys []string, axis string) ([]int, error) {
	out := make([]int, len(keys))
	for i, k := range keys {
		j, err := resolveName(n, k, axis)
		if err != nil {
			return nil, err
		}
		out[i] = j
	}
	return out, nil
}

func subsetNames(n *names.Names, indices []int) (*names.Names, error) {
	if n == nil {
		return nil, nil
	}
	return n.Subset(indices)
}

func checkIndices(indices []int, limit int, axis string) error {
	for _, i := range indices {
		if i < 0 || i >= limit {
			return goerr.New("matrix index out of range",
				goerr.V("index", i), goerr.V("limit", limit), goerr.V("axis", axis))
		}
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// formatGrid renders an aligned table in the form used by both matrix
// kinds: a name gutter, a header row, and a dash separator. Axes without
// names fall back to indices.
func formatGrid(rows, cols int, at func(r, c int) float64, rowNames, colNames *names.Names) string {
	header := make([]string, cols)
	for c := 0; c < cols; c++ {
		if colNames != nil {
			header[c] = colNames.At(c)
		} else {
			header[c] = strconv.Itoa(c)
		}
	}

	gutter := make([]string, rows)
	gutterWidth := 0
	for r := 0; r < rows; r++ {
		if rowNames != nil {
			gutter[r] = rowNames.At(r)
		} else {
			gutter[r] = strconv.Itoa(r)
		}
		if len(gutter[r]) > gutterWidth {
			gutterWidth = len(gutter[r])
		}
	}

	cells := make([][]string, rows)
	widths := make([]int, cols)
	for c := range widths {
		widths[c] = len(header[c])
	}
	for r := 0; r < rows; r++ {
		cells[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			s := formatValue(at(r, c))
			cells[r][c] = s
			if len(s) > widths[c] {
				widths[c] = len(s)
			}
		}
	}

	var lines []string

	var head strings.Builder
	head.WriteString(strings.Repeat(" ", gutterWidth))
	head.WriteString(" | ")
	for c := 0; c < cols; c++ {
		if c > 0 {
			head.WriteByte(' ')
		}
		head.WriteString(header[c] + strings.Repeat(" ", widths[c]-len(header[c])))
	}
	lines = append(lines, head.String())

	var sep strings.Builder
	sep.WriteString(strings.Repeat("-", gutterWidth))
	sep.WriteString("-+-")
	for c := 0; c < cols; c++ {
		if c > 0 {
			sep.WriteByte('-')
		}
		sep.WriteString(strings.Repeat("-", widths[c]))
	}
	lines = append(lines, sep.String())

	for r := 0; r < rows; r++ {
		var line strings.Builder
		line.WriteString(gutter[r] + strings.Repeat(" ", gutterWidth-len(gutter[r])))
		line.WriteString(" | ")
		for c := 0; c < cols; c++ {
			if c > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(strings.Repeat(" ", widths[c]-len(cells[r][c])) + cells[r][c])
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}
