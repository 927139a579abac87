package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/namedseq/pkg/cli/config"
	"github.com/m-mizutani/namedseq/pkg/table"
	"github.com/urfave/cli/v3"
)

func cmdTable(input *config.Input) *cli.Command {
	var (
		names  bool
		window int
	)

	return &cli.Command{
		Name:      "table",
		Usage:     "Render delimited input as an aligned table",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "names",
				Usage:       "Treat the first field of each row as a floating row name",
				Destination: &names,
			},
			&cli.IntFlag{
				Name:        "window",
				Usage:       "Maximum rendered width before wrapping into blocks",
				Value:       150,
				Destination: &window,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			lines, err := argLines(c)
			if err != nil {
				return err
			}
			delim := input.Delim
			if delim == "" {
				delim = "\t"
			}
			return runTable(c.Root().Writer, lines, delim, names, window)
		},
	}
}

func runTable(w io.Writer, lines []string, delim string, names bool, window int) error {
	if len(lines) == 0 {
		return nil
	}

	rows := make([][]string, len(lines))
	cols := 0
	for i, line := range lines {
		rows[i] = strings.Split(line, delim)
		if len(rows[i]) > cols {
			cols = len(rows[i])
		}
	}

	var rowNames []string
	if names {
		if cols < 2 {
			return goerr.New("input needs at least two fields per row for --names")
		}
		rowNames = make([]string, len(rows))
		for i, row := range rows {
			rowNames[i] = row[0]
			rows[i] = row[1:]
		}
		cols--
	}

	// Transpose padded rows into the column-major layout the formatter
	// expects.
	columns := make([][]string, cols)
	for c := range columns {
		columns[c] = make([]string, len(rows))
		for r, row := range rows {
			if c < len(row) {
				columns[c][r] = row[c]
			}
		}
	}

	opts := []table.FormatOption{table.WithWindow(window)}
	if rowNames != nil {
		opts = append(opts, table.WithFloatingNames(rowNames))
	}
	out, err := table.Format(columns, opts...)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}
