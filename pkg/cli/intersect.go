package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/namedseq/pkg/cli/config"
	"github.com/m-mizutani/namedseq/pkg/seq"
	"github.com/urfave/cli/v3"
)

func cmdIntersect(input *config.Input) *cli.Command {
	return &cli.Command{
		Name:      "intersect",
		Usage:     "Intersection of two or more files, in first-file order",
		ArgsUsage: "file file [file...]",
		Action: func(ctx context.Context, c *cli.Command) error {
			paths := c.Args().Slice()
			if len(paths) < 2 {
				return goerr.New("intersect needs at least two files",
					goerr.V("given", len(paths)))
			}

			seqs := make([][]string, len(paths))
			for i, path := range paths {
				values, err := fileValues(path, input.Delim)
				if err != nil {
					return err
				}
				seqs[i] = values
			}
			return runIntersect(c.Root().Writer, seqs, input.Missing)
		},
	}
}

func runIntersect(w io.Writer, seqs [][]string, missing []string) error {
	out := seq.Intersect(seqs, seq.WithIncomparables[string](missing...))
	for _, v := range out {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}
