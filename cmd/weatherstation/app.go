package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/FlameInTheDark/weatherstation/internal/config"
	"github.com/FlameInTheDark/weatherstation/internal/report"
	"github.com/FlameInTheDark/weatherstation/internal/weather"
)

type App struct {
	cfg       *config.Config
	client    *weather.Client
	formatter *report.Formatter
}

func NewApp(cfg *config.Config, colored bool) (*App, error) {
	formatter := report.New(cfg.Preferences(), cfg.Layout(), colored)
	if cfg.ReportTemplate != "" {
		if err := formatter.LoadTemplate(cfg.ReportTemplate); err != nil {
			return nil, err
		}
	}

	slog.Debug("config loaded",
		slog.String("temperature_unit", cfg.Preferences().Temperature.String()),
		slog.String("wind_speed_unit", cfg.Preferences().Wind.String()),
		slog.String("display_format", cfg.Layout().String()),
		slog.String("base_url", cfg.BaseURL))

	return &App{
		cfg:       cfg,
		client:    weather.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Timeout),
		formatter: formatter,
	}, nil
}

func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		slog.Warn("unable to close client", slog.String("error", err.Error()))
	}
}

// country falls back to the configured default for blank input.
func (a *App) country(input string) string {
	if input == "" {
		return a.cfg.DefaultCountry
	}
	return input
}

// loadApp reads the configuration named by the global flags. Configuration
// problems are reported with remediation and turned into exit status 2.
func loadApp(c *cli.Command, colored bool) (*App, error) {
	cfg, err := config.Load(c.String("config"), c.String("template"))
	if err != nil {
		var cerr *config.Error
		if errors.As(err, &cerr) {
			color.New(color.FgHiRed).Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			fmt.Fprintln(os.Stderr, cerr.Remediation())
			return nil, cli.Exit("", exitConfig)
		}
		return nil, cli.Exit(err.Error(), exitConfig)
	}

	app, err := NewApp(cfg, colored)
	if err != nil {
		return nil, cli.Exit(err.Error(), exitConfig)
	}
	return app, nil
}
