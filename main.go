package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	app "github.com/rocketscienceinc/minesweeper-client/internal"
	"github.com/rocketscienceinc/minesweeper-client/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-client/internal/command"
	"github.com/rocketscienceinc/minesweeper-client/internal/config"
)

const exitUsage = 2

// main - is the entry point of the client. It parses the command line, loads the configuration,
// initializes the logger and runs a single command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	os.Exit(run())
}

func run() int {
	cmd, err := command.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		return exitUsage
	}

	conf := config.MustLoad(cmd.ConfigPath)
	logger := initLogger(conf)

	if err = cmd.Resolve(conf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.RunApp(ctx, logger, conf, cmd, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, apperror.ErrUsage) {
			return exitUsage
		}
		return 1
	}

	return 0
}

// initialize logger. Logs go to stderr, stdout carries the command output.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
