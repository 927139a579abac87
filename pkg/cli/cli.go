package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/namedseq/pkg/cli/config"
	"github.com/m-mizutani/namedseq/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		fileCfg   config.File
		inputCfg  config.Input
	)
	var logger *slog.Logger

	flags := append(loggerCfg.Flags(), fileCfg.Flags()...)
	flags = append(flags, inputCfg.Flags()...)

	app := &cli.Command{
		Name:    "namedseq",
		Usage:   "Utilities for named, grouped and tabulated sequences",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := fileCfg.Apply(c, &loggerCfg, &inputCfg); err != nil {
				return nil, err
			}

			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdSort(&inputCfg),
			cmdUnique(&inputCfg),
			cmdMatch(&inputCfg),
			cmdIntersect(&inputCfg),
			cmdSplit(&inputCfg),
			cmdLevels(&inputCfg),
			cmdTable(&inputCfg),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
