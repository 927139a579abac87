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

func cmdUnique(input *config.Input) *cli.Command {
	var fromLast bool

	return &cli.Command{
		Name:      "unique",
		Usage:     "Drop duplicate values, keeping input order",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "from-last",
				Usage:       "Keep the last occurrence of each value instead of the first",
				Destination: &fromLast,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			values, err := argValues(c, input.Delim)
			if err != nil {
				return err
			}
			return runUnique(c.Root().Writer, values, input.Missing, fromLast)
		},
	}
}

func runUnique(w io.Writer, values, missing []string, fromLast bool) error {
	opts := []seq.Option[string]{seq.WithIncomparables[string](missing...)}
	if fromLast {
		opts = append(opts, seq.WithFromLast[string]())
	}

	for _, v := range seq.Unique(values, opts...) {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}
