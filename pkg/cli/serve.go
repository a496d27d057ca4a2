package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/cli/config"
	controller "github.com/secmon-lab/tally/pkg/controller/http"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		layoutCfg    config.Layout
		dingtalkCfg  config.DingTalk
		slackCfg     config.Slack
		firestoreCfg config.Firestore
	)

	flags := joinFlags(
		serverCfg.Flags(),
		layoutCfg.Flags(),
		dingtalkCfg.Flags(),
		slackCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting tally server",
				slog.Any("server", serverCfg),
				slog.Any("layout", layoutCfg),
				slog.Any("dingtalk", dingtalkCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
			)

			layout, err := layoutCfg.Configure(c)
			if err != nil {
				return err
			}

			notifier, err := configureNotifier(ctx, layout.NotifyThreshold, &dingtalkCfg, &slackCfg)
			if err != nil {
				return err
			}

			var seed []model.User
			if serverCfg.SeedUsers {
				seed = model.SeedUsers()
			}
			repo, err := firestoreCfg.Configure(ctx, seed)
			if err != nil {
				return err
			}
			defer repo.Close()

			// Create use cases
			var timesheetOpts []usecase.TimesheetOption
			if notifier != nil {
				timesheetOpts = append(timesheetOpts, usecase.WithNotifier(notifier))
			} else {
				logger.Info("No notifier configured, shortfall notification is disabled")
			}
			timesheetUC := usecase.NewTimesheet(layout, timesheetOpts...)
			userUC := usecase.NewUserUseCase(repo)

			// Create HTTP server
			server, err := controller.NewServer(ctx, serverCfg.Addr, timesheetUC, userUC)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
