package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	mcp_golang "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/http"
	"github.com/urfave/cli/v3"
)

type CurrentWeatherArguments struct {
	CityName    string `json:"city_name" jsonschema:"required,description=Name of the city to get current weather for. Eg: London"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"description=Two-letter ISO country code. Eg: GB"`
}

type WeatherForecastArguments struct {
	CityName    string `json:"city_name" jsonschema:"required,description=Name of the city to get weather forecast for. Eg: London"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"description=Two-letter ISO country code. Eg: GB"`
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve weather lookups as MCP tools over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address",
				Value: ":8089",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if !c.Bool("debug") {
				logLevel.Set(slog.LevelInfo)
			}

			// Tool output is read by a model, not a terminal.
			app, err := loadApp(c, false)
			if err != nil {
				return err
			}
			defer app.Close()

			transport := http.NewHTTPTransport("/mcp")
			transport.WithAddr(c.String("addr"))

			server := mcp_golang.NewServer(transport, mcp_golang.WithName("Weather Station"), mcp_golang.WithVersion("1.0.0"))
			if err := app.registerTools(ctx, server); err != nil {
				return err
			}

			go func() {
				if err := server.Serve(); err != nil {
					slog.Error("mcp server stopped", slog.String("error", err.Error()))
				}
			}()

			slog.Info("Up and running", slog.String("addr", c.String("addr")))
			<-ctx.Done()
			return nil
		},
	}
}

func (a *App) registerTools(ctx context.Context, server *mcp_golang.Server) error {
	err := server.RegisterTool("get_current_weather", "Get current weather for a city. Use this tool when asked about weather right now.", func(arguments CurrentWeatherArguments) (*mcp_golang.ToolResponse, error) {
		return mcp_golang.NewToolResponse(mcp_golang.NewTextContent(a.currentWeatherTool(ctx, arguments))), nil
	})
	if err != nil {
		return err
	}

	return server.RegisterTool("get_weather_forecast", "Get 5 day weather forecast in 3 hour steps for a city.", func(arguments WeatherForecastArguments) (*mcp_golang.ToolResponse, error) {
		return mcp_golang.NewToolResponse(mcp_golang.NewTextContent(a.forecastTool(ctx, arguments))), nil
	})
}

// currentWeatherTool returns the report text, or a readable failure for the
// model to relay. Lookup errors are never returned as tool errors.
func (a *App) currentWeatherTool(ctx context.Context, arguments CurrentWeatherArguments) string {
	city := strings.TrimSpace(arguments.CityName)
	country := a.country(strings.TrimSpace(arguments.CountryCode))
	slog.Info("get current weather", slog.String("city", city), slog.String("country", country))

	r, err := a.client.Current(ctx, city, country)
	if err != nil {
		slog.Error("unable to get current weather", slog.String("error", err.Error()))
		return fmt.Sprintf("Unable to get current weather: %s", err.Error())
	}
	text, err := a.formatter.Format(r)
	if err != nil {
		slog.Error("unable to format weather", slog.String("error", err.Error()))
		return fmt.Sprintf("Unable to format weather: %s", err.Error())
	}
	return text
}

func (a *App) forecastTool(ctx context.Context, arguments WeatherForecastArguments) string {
	city := strings.TrimSpace(arguments.CityName)
	country := a.country(strings.TrimSpace(arguments.CountryCode))
	slog.Info("get forecast", slog.String("city", city), slog.String("country", country))

	fc, err := a.client.Forecast(ctx, city, country)
	if err != nil {
		slog.Error("unable to get weather forecast", slog.String("error", err.Error()))
		return fmt.Sprintf("Unable to get weather forecast: %s", err.Error())
	}
	text, err := a.formatter.FormatForecast(fc)
	if err != nil {
		return fmt.Sprintf("Unable to format forecast: %s", err.Error())
	}
	return text
}
