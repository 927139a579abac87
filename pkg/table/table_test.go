package table_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/namedseq/pkg/table"
)

func TestFormat(t *testing.T) {
	columns := [][]string{
		{"asdasd", "1", "2", "3", "4"},
		{"", "|", "|", "|", "|"},
		{"asyudgausydga", "A", "B", "C", "D"},
	}

	out, err := table.Format(columns)
	gt.NoError(t, err)

	lines := strings.Split(out, "\n")
	gt.Equal(t, len(lines), 5)
	// Every line shares the same width.
	for _, line := range lines {
		gt.Equal(t, len(line), len(lines[0]))
	}
	// Cells are right-justified.
	gt.String(t, lines[0]).Contains("asdasd")
	gt.String(t, lines[1]).Contains("     1")
}

func TestFormatFloatingNames(t *testing.T) {
	columns := [][]string{
		{"1", "2", "3"},
		{"A", "B", "C"},
	}

	out, err := table.Format(columns,
		table.WithFloatingNames([]string{"", "aarg", "boo"}))
	gt.NoError(t, err)

	lines := strings.Split(out, "\n")
	gt.Equal(t, len(lines), 3)
	gt.True(t, strings.HasPrefix(lines[1], "aarg"))
	gt.True(t, strings.HasPrefix(lines[2], "boo "))
}

func TestFormatWindow(t *testing.T) {
	columns := [][]string{
		{"aaaaaa", "1"},
		{"bbbbbb", "2"},
		{"cccccc", "3"},
	}

	// Only one column fits per block, so each block contributes two lines.
	out, err := table.Format(columns, table.WithWindow(10))
	gt.NoError(t, err)
	lines := strings.Split(out, "\n")
	gt.Equal(t, len(lines), 6)

	// Floating names are repeated in every block.
	out, err = table.Format(columns,
		table.WithWindow(10),
		table.WithFloatingNames([]string{"top", "bot"}))
	gt.NoError(t, err)
	gt.Equal(t, strings.Count(out, "top"), 3)
}

func TestFormatErrors(t *testing.T) {
	_, err := table.Format([][]string{{"a"}, {"b", "c"}})
	gt.Error(t, err)

	_, err = table.Format([][]string{{"a"}}, table.WithFloatingNames([]string{"x", "y"}))
	gt.Error(t, err)

	out, err := table.Format(nil)
	gt.NoError(t, err)
	gt.Equal(t, out, "")
}

func TestTruncateStrings(t *testing.T) {
	got := table.TruncateStrings([]string{"short", strings.Repeat("x", 50)}, 10)
	gt.Equal(t, got[0], "short")
	gt.Equal(t, got[1], "xxxxxxx...")
	gt.Equal(t, len(got[1]), 10)
}

func TestFormatList(t *testing.T) {
	gt.Equal(t, table.FormatList([]string{"a", "b"}, 5), "[a, b]")
	gt.Equal(t, table.FormatList([]string{"a", "b", "c"}, 2), "[a, b, ...]")
	gt.Equal(t, table.FormatList(nil, 2), "[]")
}
