package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/FlameInTheDark/weatherstation/internal/config"
)

const (
	exitFailure = 1
	exitConfig  = 2
)

var logLevel = new(slog.LevelVar)

func main() {
	// A missing .env is fine; values may come from the config files alone.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().Run(ctx, os.Args)
	stop()
	if err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitCode(err))
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:        "weatherstation",
		Usage:       "current weather in your terminal",
		Description: "Prompts for a city and country code and prints an OpenWeatherMap report.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"cfg"},
				Usage:   "config file path",
				Value:   config.DefaultPath,
				Sources: cli.EnvVars("WEATHER_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "template",
				Usage: "config template path, read before the config file",
				Value: config.DefaultTemplatePath,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: setupLogging,
		Action: runInteractive,
		Commands: []*cli.Command{
			currentCommand(),
			forecastCommand(),
			initCommand(),
			envCommand(),
			mcpCommand(),
		},
		// Exit codes are decided in main.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func setupLogging(ctx context.Context, c *cli.Command) (context.Context, error) {
	logLevel.Set(slog.LevelWarn)
	if c.Bool("debug") {
		logLevel.Set(slog.LevelDebug)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	return ctx, nil
}

func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return exitFailure
}
