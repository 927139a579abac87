package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/namedseq/pkg/cli/config"
	"github.com/m-mizutani/namedseq/pkg/factor"
	"github.com/m-mizutani/namedseq/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdSplit(input *config.Input) *cli.Command {
	var (
		groupsPath string
		levelsPath string
		outDir     string
		workers    int
	)

	return &cli.Command{
		Name:      "split",
		Usage:     "Write one file per group under the output directory",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "groups",
				Usage:       "File holding a group label per input value",
				Required:    true,
				Destination: &groupsPath,
			},
			&cli.StringFlag{
				Name:        "factor-levels",
				Usage:       "File fixing the level order; labels outside it become missing",
				Destination: &levelsPath,
			},
			&cli.StringFlag{
				Name:        "out-dir",
				Usage:       "Directory for the per-group output files",
				Value:       ".",
				Destination: &outDir,
			},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "Number of concurrent file writers",
				Value:       4,
				Destination: &workers,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			values, err := argValues(c, input.Delim)
			if err != nil {
				return err
			}
			labels, err := fileValues(groupsPath, input.Delim)
			if err != nil {
				return err
			}

			var levels []string
			if levelsPath != "" {
				if levels, err = fileValues(levelsPath, input.Delim); err != nil {
					return err
				}
			}

			return runSplit(ctx, values, labels, levels, input.Missing, outDir, workers)
		},
	}
}

func runSplit(ctx context.Context, values, labels, levels, missing []string, outDir string, workers int) error {
	opts := []factor.Option{factor.WithMissing(missing...)}
	if levels != nil {
		opts = append(opts, factor.WithLevels(levels))
	}
	f, err := factor.FromSequence(labels, opts...)
	if err != nil {
		return err
	}

	groups, err := factor.Split(values, f, factor.Drop())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outDir))
	}

	logger := ctxlog.From(ctx)
	pool := async.NewPool(ctx, workers)
	for _, g := range groups {
		path := filepath.Join(outDir, groupFileName(g.Level))
		lines := g.Values

		if err := pool.Submit(func(ctx context.Context) error {
			if err := writeLines(path, lines); err != nil {
				return err
			}
			ctxlog.From(ctx).Debug("wrote group file",
				slog.String("path", path),
				slog.Int("values", len(lines)))
			return nil
		}); err != nil {
			// Drain running writers before reporting the cancellation.
			if werr := pool.Wait(); werr != nil {
				logger.Error("group writers failed", slog.Any("error", werr))
			}
			return err
		}
	}
	return pool.Wait()
}

// groupFileName maps a level to a file name, flattening path separators.
func groupFileName(level string) string {
	name := strings.NewReplacer("/", "_", string(os.PathSeparator), "_").Replace(level)
	if name == "" {
		name = "_empty"
	}
	return name + ".txt"
}

func writeLines(path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return goerr.Wrap(err, "failed to write group file", goerr.V("path", path))
	}
	return nil
}
