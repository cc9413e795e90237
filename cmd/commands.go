package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/KotFed0t/quotes_sheet_sync/internal/auth"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/internal/scheduler"
	"github.com/KotFed0t/quotes_sheet_sync/internal/transport/rest"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
	"github.com/urfave/cli/v3"
)

func runCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run one sync locally and print the response",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "xlsx",
				Usage: "write into the workbook at `PATH` instead of google sheets",
			},
			&cli.StringSliceFlag{
				Name:  "symbols",
				Usage: "override the configured symbols",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if path := cmd.String("xlsx"); path != "" {
				cfg.Sheets.Destination = config.DestinationXlsx
				cfg.Sheets.XlsxPath = path
			}
			if symbols := cmd.StringSlice("symbols"); len(symbols) > 0 {
				cfg.Symbols = symbols
			}

			ctx = utils.CtxWithRqID(ctx, "")

			ctrl, cleanup, err := buildController(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			report := ctrl.Sync(ctx)

			body, err := json.Marshal(report)
			if err != nil {
				return err
			}
			fmt.Printf("response: %s, status code: %d\n", body, report.HTTPCode())

			if report.Status == model.StatusError {
				return errors.New(report.Message)
			}
			return nil
		},
	}
}

func serveCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the HTTP trigger, and the crontab job when SYNC_CRONTAB is set",
		Action: func(ctx context.Context, _ *cli.Command) error {
			ctrl, cleanup, err := buildController(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if cfg.Jobs.SyncCrontab != "" {
				sched, err := scheduler.New(cfg.Location())
				if err != nil {
					return err
				}
				if err = sched.NewCrontabJob("sync quotes", ctrl.SyncJob, cfg.Jobs.SyncCrontab); err != nil {
					return err
				}
				sched.Start()
				defer sched.Stop()
			}

			srv := &http.Server{
				Addr:              ":" + cfg.Server.Port,
				Handler:           rest.NewRouter(ctrl),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				slog.Info("http server started", slog.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("http server failed", slog.String("err", err.Error()))
				}
			}()

			// Waiting interruption signal
			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
			<-interrupt

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
}

func authCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authorize access to google sheets and store the token",
		Action: func(ctx context.Context, _ *cli.Command) error {
			ctx = utils.CtxWithRqID(ctx, "")

			store, cleanup, err := newTokenStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			authenticator := auth.New(auth.NewCredentialsProvider(cfg), store)

			return authenticator.Bootstrap(ctx, func(authURL string) {
				fmt.Printf("Open this link in your browser to authorize access:\n%s\n", authURL)
			})
		},
	}
}
