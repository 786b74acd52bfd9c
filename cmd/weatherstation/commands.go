package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/FlameInTheDark/weatherstation/internal/config"
	"github.com/FlameInTheDark/weatherstation/internal/session"
)

func runInteractive(ctx context.Context, c *cli.Command) error {
	app, err := loadApp(c, !color.NoColor)
	if err != nil {
		return err
	}
	defer app.Close()

	var prompt session.Prompter
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		lp, err := session.NewLinePrompter(app.cfg.HistoryFile, app.cfg.HistoryLimit())
		if err != nil {
			return err
		}
		prompt = lp
	} else {
		prompt = session.NewScanPrompter(os.Stdin, color.Output)
	}
	defer prompt.Close()

	return session.New(app.cfg, app.client, app.formatter, prompt, color.Output, color.Error).Run(ctx)
}

func locationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "city",
			Usage:    "city name, e.g. London",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "country",
			Usage: "two-letter country code, defaults to default_country",
		},
	}
}

func currentCommand() *cli.Command {
	return &cli.Command{
		Name:  "current",
		Usage: "print the current weather for one city and exit",
		Flags: locationFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			app, err := loadApp(c, !color.NoColor)
			if err != nil {
				return err
			}
			defer app.Close()

			r, err := app.client.Current(ctx, strings.TrimSpace(c.String("city")), app.country(strings.TrimSpace(c.String("country"))))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), exitFailure)
			}
			text, err := app.formatter.Format(r)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), exitFailure)
			}
			fmt.Fprintln(color.Output, text)
			return nil
		},
	}
}

func forecastCommand() *cli.Command {
	return &cli.Command{
		Name:  "forecast",
		Usage: "print the 5 day / 3 hour forecast for one city",
		Flags: locationFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			app, err := loadApp(c, !color.NoColor)
			if err != nil {
				return err
			}
			defer app.Close()

			fc, err := app.client.Forecast(ctx, strings.TrimSpace(c.String("city")), app.country(strings.TrimSpace(c.String("country"))))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), exitFailure)
			}
			text, err := app.formatter.FormatForecast(fc)
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), exitFailure)
			}
			fmt.Fprintln(color.Output, text)
			return nil
		},
	}
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "write a config file from the template with your API key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "api-key",
				Usage:    "OpenWeatherMap API key",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "overwrite an existing config file",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.String("config")
			if _, err := config.Init(path, c.String("template"), c.String("api-key"), c.Bool("force")); err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), exitConfig)
			}
			fmt.Printf("Configuration written to %s\n", path)
			return nil
		},
	}
}

func envCommand() *cli.Command {
	return &cli.Command{
		Name:  "env",
		Usage: "list environment variables that override config values",
		Action: func(ctx context.Context, c *cli.Command) error {
			d, err := config.Description()
			if err != nil {
				return err
			}
			fmt.Println(d)
			return nil
		},
	}
}
