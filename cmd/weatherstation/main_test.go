package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/FlameInTheDark/weatherstation/internal/config"
)

func TestExitCode(t *testing.T) {
	if got := exitCode(cli.Exit("", exitConfig)); got != exitConfig {
		t.Errorf("expected %d, got %d", exitConfig, got)
	}
	if got := exitCode(fmt.Errorf("wrapped: %w", cli.Exit("bad", exitConfig))); got != exitConfig {
		t.Errorf("expected wrapped exit coder to keep %d, got %d", exitConfig, got)
	}
	if got := exitCode(errors.New("boom")); got != exitFailure {
		t.Errorf("expected %d, got %d", exitFailure, got)
	}
}

func TestAppCountryFallback(t *testing.T) {
	cfg := config.Default()
	cfg.APIKey = "test"
	cfg.DefaultCountry = "GB"

	app, err := NewApp(&cfg, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer app.Close()

	if got := app.country(""); got != "GB" {
		t.Errorf("expected default country GB, got %s", got)
	}
	if got := app.country("FR"); got != "FR" {
		t.Errorf("expected FR, got %s", got)
	}
}

func TestNewAppBadTemplate(t *testing.T) {
	cfg := config.Default()
	cfg.APIKey = "test"
	cfg.ReportTemplate = "does-not-exist.tmpl"

	if _, err := NewApp(&cfg, false); err == nil {
		t.Fatal("expected error for missing report template")
	}
}

const londonJSON = `{
	"weather": [{"main": "Clouds", "description": "overcast clouds", "icon": "04d"}],
	"main": {"temp": 15.0, "feels_like": 14.0, "temp_min": 13.0, "temp_max": 17.0, "pressure": 1012, "humidity": 72},
	"wind": {"speed": 3.0, "deg": 90},
	"sys": {"country": "GB"},
	"name": "London"
}`

const forecastJSON = `{
	"list": [
		{"dt": 1700000000, "dt_txt": "2023-11-14 22:00:00",
		 "main": {"temp": 8.5, "feels_like": 6.1, "temp_min": 8.0, "temp_max": 9.0, "pressure": 1008, "humidity": 80},
		 "weather": [{"main": "Rain", "description": "light rain", "icon": "10n"}],
		 "wind": {"speed": 4.2, "deg": 200}}
	],
	"city": {"name": "London", "country": "GB"}
}`

// newProvider serves canned responses and counts every request it receives.
func newProvider(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	hits := new(atomic.Int32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch {
		case r.URL.Query().Get("q") == "Nowhere,GB":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		case r.URL.Path == "/forecast":
			_, _ = w.Write([]byte(forecastJSON))
		default:
			_, _ = w.Write([]byte(londonJSON))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, hits
}

// unsetEnv removes name for the duration of the test.
func unsetEnv(t *testing.T, name string) {
	t.Helper()
	if v, ok := os.LookupEnv(name); ok {
		t.Setenv(name, v)
		if err := os.Unsetenv(name); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCurrentCommandStartup(t *testing.T) {
	for _, name := range []string{"WEATHER_CONFIG", "WEATHER_API_KEY", "WEATHER_BASE_URL", "WEATHER_DEFAULT_COUNTRY", "WEATHER_TEMPERATURE_UNIT", "WEATHER_WIND_SPEED_UNIT", "WEATHER_DISPLAY_FORMAT", "WEATHER_TIMEOUT"} {
		unsetEnv(t, name)
	}

	tests := []struct {
		name     string
		config   func(url string) string
		city     string
		wantCode int
		wantHits int32
	}{
		{"empty api key", func(url string) string {
			return fmt.Sprintf("api_key = \"\"\nbase_url = %q\n", url)
		}, "London", exitConfig, 0},
		{"no config files", nil, "London", exitConfig, 0},
		{"placeholder api key", func(url string) string {
			return fmt.Sprintf("api_key = %q\nbase_url = %q\n", config.PlaceholderAPIKey, url)
		}, "London", exitConfig, 0},
		{"valid config", func(url string) string {
			return fmt.Sprintf("api_key = \"test-key\"\ndefault_country = \"GB\"\nbase_url = %q\n", url)
		}, "London", 0, 1},
		{"unknown city", func(url string) string {
			return fmt.Sprintf("api_key = \"test-key\"\ndefault_country = \"GB\"\nbase_url = %q\n", url)
		}, "Nowhere", exitFailure, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, hits := newProvider(t)
			dir := t.TempDir()
			cfgPath := filepath.Join(dir, "config.toml")
			if tt.config != nil {
				if err := os.WriteFile(cfgPath, []byte(tt.config(srv.URL)), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			err := newRootCommand().Run(context.Background(), []string{
				"weatherstation",
				"--config", cfgPath,
				"--template", filepath.Join(dir, "config.tpl.toml"),
				"current", "--city", tt.city,
			})

			code := 0
			if err != nil {
				code = exitCode(err)
			}
			if code != tt.wantCode {
				t.Errorf("expected exit code %d, got %d (%v)", tt.wantCode, code, err)
			}
			if got := hits.Load(); got != tt.wantHits {
				t.Errorf("expected %d provider requests, got %d", tt.wantHits, got)
			}
		})
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	srv, _ := newProvider(t)

	cfg := config.Default()
	cfg.APIKey = "test-key"
	cfg.DefaultCountry = "GB"
	cfg.BaseURL = srv.URL

	app, err := NewApp(&cfg, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(app.Close)
	return app
}

func TestCurrentWeatherTool(t *testing.T) {
	app := newTestApp(t)

	text := app.currentWeatherTool(context.Background(), CurrentWeatherArguments{CityName: " London "})
	if !strings.Contains(text, "London, GB") || !strings.Contains(text, "overcast clouds") {
		t.Errorf("expected London report, got %q", text)
	}

	text = app.currentWeatherTool(context.Background(), CurrentWeatherArguments{CityName: "Nowhere", CountryCode: "GB"})
	if text != "Unable to get current weather: weather api error (HTTP 404): city not found" {
		t.Errorf("unexpected failure text %q", text)
	}
}

func TestForecastTool(t *testing.T) {
	app := newTestApp(t)

	text := app.forecastTool(context.Background(), WeatherForecastArguments{CityName: "London"})
	if !strings.HasPrefix(text, "Forecast for London, GB:") || !strings.Contains(text, "light rain") {
		t.Errorf("expected London forecast, got %q", text)
	}

	text = app.forecastTool(context.Background(), WeatherForecastArguments{CityName: "Nowhere"})
	if !strings.HasPrefix(text, "Unable to get weather forecast: ") || !strings.Contains(text, "404") {
		t.Errorf("unexpected failure text %q", text)
	}
}
