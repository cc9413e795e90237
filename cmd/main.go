package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/urfave/cli/v3"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.String("provider", cfg.API.Provider), slog.Any("symbols", cfg.Symbols), slog.String("destination", cfg.Sheets.Destination))

	cmd := &cli.Command{
		Name:  "quotes_sheet_sync",
		Usage: "Copy today's quotes of the configured symbols into a spreadsheet",
		Commands: []*cli.Command{
			runCommand(cfg),
			serveCommand(cfg),
			authCommand(cfg),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
