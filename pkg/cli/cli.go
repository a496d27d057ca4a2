package cli

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg   config.Logger
		closeLogger = func() {}
	)

	// Values in .env never override variables already set
	envErr := godotenv.Load()

	app := &cli.Command{
		Name:    "tally",
		Usage:   "Timesheet reconciliation service",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Configure logger
			logger, closer, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			closeLogger = closer

			if envErr == nil {
				logger.Debug("Loaded environment from .env")
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			closeLogger()
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdGenerate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		ctxlog.From(ctx).Error("CLI execution failed", "error", err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
