package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/namedseq/pkg/cli/config"
	"github.com/m-mizutani/namedseq/pkg/factor"
	"github.com/urfave/cli/v3"
)

func cmdLevels(input *config.Input) *cli.Command {
	return &cli.Command{
		Name:      "levels",
		Usage:     "Summarize input as factor levels with per-level counts",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, c *cli.Command) error {
			values, err := argValues(c, input.Delim)
			if err != nil {
				return err
			}
			return runLevels(c.Root().Writer, values, input.Missing)
		},
	}
}

func runLevels(w io.Writer, values, missing []string) error {
	f, err := factor.FromSequence(values, factor.WithMissing(missing...))
	if err != nil {
		return err
	}

	counts := make([]int, len(f.Levels()))
	missingCount := 0
	for _, code := range f.Codes() {
		if code < 0 {
			missingCount++
			continue
		}
		counts[code]++
	}

	bold := color.New(color.Bold)
	levelColor := color.New(color.FgCyan)
	naColor := color.New(color.FgYellow)

	if _, err := bold.Fprintf(w, "%d value(s), %d level(s)\n", f.Len(), len(f.Levels())); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	for i, level := range f.Levels() {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", levelColor.Sprint(level), counts[i]); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
	}
	if missingCount > 0 {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", naColor.Sprint("<NA>"), missingCount); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}
