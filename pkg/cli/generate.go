package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/cli/config"
	"github.com/secmon-lab/tally/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdGenerate() *cli.Command {
	var (
		rosterPath  string
		rawPath     string
		outputDir   string
		notifyOn    bool
		layoutCfg   config.Layout
		dingtalkCfg config.DingTalk
		slackCfg    config.Slack
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "roster",
				Aliases:     []string{"s"},
				Usage:       "Roster workbook (employee list)",
				Required:    true,
				Destination: &rosterPath,
			},
			&cli.StringFlag{
				Name:        "raw",
				Aliases:     []string{"r"},
				Usage:       "Raw hours workbook exported from the time-tracking system",
				Required:    true,
				Destination: &rawPath,
			},
			&cli.StringFlag{
				Name:        "output-dir",
				Aliases:     []string{"o"},
				Usage:       "Directory to write the report into",
				Value:       ".",
				Sources:     cli.EnvVars("TALLY_OUTPUT_DIR"),
				Destination: &outputDir,
			},
			&cli.BoolFlag{
				Name:        "notify",
				Usage:       "Send the shortfall notification after generating",
				Destination: &notifyOn,
			},
		},
		layoutCfg.Flags(),
		dingtalkCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a timesheet report from local files",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			layout, err := layoutCfg.Configure(c)
			if err != nil {
				return err
			}

			var opts []usecase.TimesheetOption
			if notifyOn {
				notifier, err := configureNotifier(ctx, layout.NotifyThreshold, &dingtalkCfg, &slackCfg)
				if err != nil {
					return err
				}
				if notifier == nil {
					logger.Warn("--notify is set but no notifier is configured")
				} else {
					// The process exits right after, so send in the foreground
					opts = append(opts,
						usecase.WithNotifier(notifier),
						usecase.WithDispatcher(func(ctx context.Context, handler func(ctx context.Context) error) {
							if err := handler(ctx); err != nil {
								logger.Error("Failed to send notification", "error", err)
							}
						}),
					)
				}
			}

			logger.Debug("Generating report",
				slog.String("roster", rosterPath),
				slog.String("raw", rawPath),
				slog.Any("layout", layoutCfg),
			)

			report, path, err := usecase.NewTimesheet(layout, opts...).GenerateFile(ctx, rosterPath, rawPath, outputDir)
			if err != nil {
				return goerr.Wrap(err, "failed to generate report")
			}

			logger.Info("Report written",
				"path", path,
				"employees", len(report.Rows),
				"flagged", report.FlaggedCount(),
			)
			fmt.Fprintln(c.Root().Writer, path)
			return nil
		},
	}
}
