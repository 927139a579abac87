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

func cmdMatch(input *config.Input) *cli.Command {
	var (
		targetsPath string
		dupMethod   string
		failMissing bool
	)

	return &cli.Command{
		Name:      "match",
		Usage:     "Print the position of each input value in the targets file (-1 when absent)",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "targets",
				Usage:       "File holding the values to match against",
				Required:    true,
				Destination: &targetsPath,
			},
			&cli.StringFlag{
				Name:        "duplicate-method",
				Usage:       "Which occurrence wins for duplicated targets (first, last)",
				Value:       "first",
				Destination: &dupMethod,
			},
			&cli.BoolFlag{
				Name:        "fail-missing",
				Usage:       "Fail when a value is not found in targets",
				Destination: &failMissing,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			values, err := argValues(c, input.Delim)
			if err != nil {
				return err
			}
			targets, err := fileValues(targetsPath, input.Delim)
			if err != nil {
				return err
			}
			return runMatch(c.Root().Writer, values, targets, input.Missing, dupMethod, failMissing)
		},
	}
}

func runMatch(w io.Writer, values, targets, missing []string, dupMethod string, failMissing bool) error {
	opts := []seq.Option[string]{seq.WithIncomparables[string](missing...)}
	switch dupMethod {
	case "first":
		opts = append(opts, seq.WithDuplicateMethod[string](seq.DuplicateFirst))
	case "last":
		opts = append(opts, seq.WithDuplicateMethod[string](seq.DuplicateLast))
	default:
		return goerr.New("invalid duplicate method", goerr.V("method", dupMethod))
	}
	if failMissing {
		opts = append(opts, seq.WithFailMissing[string]())
	}

	indices, err := seq.Match(values, targets, opts...)
	if err != nil {
		return err
	}
	for _, i := range indices {
		if _, err := fmt.Fprintln(w, i); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}
