package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/FlameInTheDark/weatherstation/internal/report"
	"github.com/FlameInTheDark/weatherstation/internal/units"
	"github.com/FlameInTheDark/weatherstation/internal/weather"
)

// PlaceholderAPIKey is the value shipped in the template. It is never a valid key.
const PlaceholderAPIKey = "YOUR_API_KEY"

const (
	DefaultPath         = "config.toml"
	DefaultTemplatePath = "config.tpl.toml"
)

type Config struct {
	APIKey          string        `toml:"api_key" env:"WEATHER_API_KEY" env-description:"OpenWeatherMap API key"`
	DefaultCountry  string        `toml:"default_country" env:"WEATHER_DEFAULT_COUNTRY" env-description:"two-letter country code used when none is entered"`
	TemperatureUnit string        `toml:"temperature_unit" env:"WEATHER_TEMPERATURE_UNIT" env-description:"celsius, c, fahrenheit or f"`
	WindSpeedUnit   string        `toml:"wind_speed_unit" env:"WEATHER_WIND_SPEED_UNIT" env-description:"m/s, km/h or mph"`
	DisplayFormat   string        `toml:"display_format" env:"WEATHER_DISPLAY_FORMAT" env-description:"simple, detailed or compact"`
	ReportTemplate  string        `toml:"report_template"`
	SaveHistory     bool          `toml:"save_history"`
	MaxHistoryItems int           `toml:"max_history_items"`
	HistoryFile     string        `toml:"history_file"`
	BaseURL         string        `toml:"base_url" env:"WEATHER_BASE_URL" env-description:"provider API root"`
	Timeout         time.Duration `toml:"timeout" env:"WEATHER_TIMEOUT" env-description:"per request timeout, e.g. 10s"`
}

// Default returns the values used for keys neither file sets.
func Default() Config {
	return Config{
		DefaultCountry:  "US",
		TemperatureUnit: "celsius",
		WindSpeedUnit:   "m/s",
		DisplayFormat:   "detailed",
		SaveHistory:     true,
		MaxHistoryItems: 10,
		BaseURL:         weather.DefaultBaseURL,
		Timeout:         10 * time.Second,
	}
}

// Load reads the template at templatePath and then the config at path on top
// of the defaults, applies environment overrides and validates the result.
// At least one of the two files must exist.
func Load(path, templatePath string) (*Config, error) {
	hasConfig := fileExists(path)
	hasTemplate := fileExists(templatePath)
	if !hasConfig && !hasTemplate {
		return nil, &Error{Kind: KindMissing, Path: path, Template: templatePath, Err: ErrMissing}
	}

	cfg := Default()
	if hasTemplate {
		if err := cleanenv.ReadConfig(templatePath, &cfg); err != nil {
			return nil, &Error{Kind: KindInvalid, Path: templatePath, Reason: "unable to parse file", Err: err}
		}
	}
	if hasConfig {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, &Error{Kind: KindInvalid, Path: path, Reason: "unable to parse file", Err: err}
		}
	}

	if err := cfg.Validate(); err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			cerr.Path = path
			cerr.Template = templatePath
			cerr.TemplateOnly = !hasConfig
		}
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and that every unit and format name is known.
func (c *Config) Validate() error {
	key := strings.TrimSpace(c.APIKey)
	if key == "" {
		return invalid("api_key", "API key is required")
	}
	if strings.EqualFold(key, PlaceholderAPIKey) {
		return invalid("api_key", "API key still holds the template placeholder")
	}
	if len(c.DefaultCountry) != 2 {
		return invalid("default_country", "default country must be a 2-letter code")
	}
	if _, err := units.ParseTemperature(c.TemperatureUnit); err != nil {
		return invalid("temperature_unit", err.Error())
	}
	if _, err := units.ParseWindSpeed(c.WindSpeedUnit); err != nil {
		return invalid("wind_speed_unit", err.Error())
	}
	if _, err := report.ParseLayout(c.DisplayFormat); err != nil {
		return invalid("display_format", err.Error())
	}
	if c.MaxHistoryItems < 0 {
		return invalid("max_history_items", "must not be negative")
	}
	if c.Timeout < 0 {
		return invalid("timeout", "must not be negative")
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return invalid("base_url", "provider URL is required")
	}
	return nil
}

// Preferences returns the display units. Call it on a validated config only.
func (c *Config) Preferences() report.Preferences {
	t, _ := units.ParseTemperature(c.TemperatureUnit)
	w, _ := units.ParseWindSpeed(c.WindSpeedUnit)
	return report.Preferences{Temperature: t, Wind: w}
}

// Layout returns the report layout. Call it on a validated config only.
func (c *Config) Layout() report.Layout {
	l, _ := report.ParseLayout(c.DisplayFormat)
	return l
}

// HistoryLimit is the number of lookups kept in memory, zero when history is off.
func (c *Config) HistoryLimit() int {
	if !c.SaveHistory {
		return 0
	}
	return c.MaxHistoryItems
}

// Save writes the config as TOML to path. The file is replaced only after the
// whole document has been written.
func (c *Config) Save(path string) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	tmp := f.Name()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

// Init writes a config file at path built from the defaults, the template
// when it exists, and apiKey. Environment overrides are not written.
func Init(path, templatePath, apiKey string, force bool) (*Config, error) {
	if fileExists(path) && !force {
		return nil, fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}

	cfg := Default()
	if fileExists(templatePath) {
		if _, err := toml.DecodeFile(templatePath, &cfg); err != nil {
			return nil, &Error{Kind: KindInvalid, Path: templatePath, Reason: "unable to parse file", Err: err}
		}
	}
	cfg.APIKey = strings.TrimSpace(apiKey)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Description lists the environment variables that override file values.
func Description() (string, error) {
	cfg := Default()
	header := "Environment variables:"
	return cleanenv.GetDescription(&cfg, &header)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
