package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/saylorsolutions/debug/internal/cli"
	"github.com/saylorsolutions/debug/internal/env"
	"github.com/saylorsolutions/debug/internal/runner"
)

const (
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	printer := cli.NewPrinter()
	printer.UseColor(!env.Set("NO_COLOR"))
	printer.Quiet(env.Bool("REQUIRE_QUIET", false))

	level := slog.LevelWarn
	if env.Bool("REQUIRE_VERBOSE", false) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(printer, &slog.HandlerOptions{Level: level}))

	r := runner.New(runner.Config{
		Name:    "require",
		Printer: printer,
		Logger:  logger,
	})
	err := r.Exec(args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, runner.ErrCheckFailed):
		return exitFailed
	case errors.Is(err, &cli.UsageError{}):
		printer.Println(err)
		return exitUsage
	default:
		logger.Error("Unexpected error", "error", err)
		return exitFailed
	}
}
