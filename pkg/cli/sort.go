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

func cmdSort(input *config.Input) *cli.Command {
	var decreasing bool

	return &cli.Command{
		Name:      "sort",
		Usage:     "Stable sort of input values, missing values last",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "decreasing",
				Usage:       "Sort in decreasing order",
				Destination: &decreasing,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			values, err := argValues(c, input.Delim)
			if err != nil {
				return err
			}
			return runSort(c.Root().Writer, values, input.Missing, decreasing)
		},
	}
}

func runSort(w io.Writer, values, missing []string, decreasing bool) error {
	opts := []seq.OrderOption[string]{seq.ForceLast[string](missing...)}
	if decreasing {
		opts = append(opts, seq.Decreasing[string]())
	}

	for _, v := range seq.Sort(values, opts...) {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}
