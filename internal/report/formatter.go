// Package report turns decoded provider responses into human readable text
// using the display preferences of the session.
package report

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/FlameInTheDark/weatherstation/internal/condition"
	"github.com/FlameInTheDark/weatherstation/internal/units"
	"github.com/FlameInTheDark/weatherstation/internal/weather"
)

// ErrNoConditions is returned when a report carries no condition entry.
// It signals a provider contract violation; nothing is rendered.
var ErrNoConditions = errors.New("weather report has no conditions")

// Preferences are the display units chosen for a session.
type Preferences struct {
	Temperature units.Temperature
	Wind        units.WindSpeed
}

// Formatter renders reports. It is immutable after construction except for
// LoadTemplate, which is meant to be called once during setup.
type Formatter struct {
	Prefs  Preferences
	Layout Layout
	// Color wraps the rendered block in the condition color.
	Color bool

	tpl *template.Template
}

// view is the data handed to report templates. Values are already converted.
type view struct {
	Location    string
	Description string
	Category    string
	Icon        string
	Emoji       string
	Temp        float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    float64
	Pressure    float64
	WindSpeed   float64
	Arrow       string
}

// New returns a Formatter for the built-in layout. With color set, rendered
// text is wrapped in the color of the report's condition.
func New(prefs Preferences, layout Layout, color bool) *Formatter {
	f := &Formatter{
		Prefs:  prefs,
		Layout: layout,
		Color:  color,
	}
	f.tpl = f.builtin(layout)
	return f
}

// Format renders r with the configured layout. The temperature emoji is
// picked from the raw Celsius value, pressure is never converted.
func (f *Formatter) Format(r *weather.Report) (string, error) {
	if r == nil || len(r.Conditions) == 0 {
		return "", ErrNoConditions
	}

	location := r.Name
	if c := r.Country(); c != "" {
		location += ", " + c
	}

	primary := r.Conditions[0]
	m := r.Measurements
	v := view{
		Location:    location,
		Description: primary.Description,
		Category:    primary.Main,
		Icon:        primary.Icon,
		Emoji:       condition.TemperatureEmoji(m.Temp),
		Temp:        units.ConvertTemperature(m.Temp, f.Prefs.Temperature),
		FeelsLike:   units.ConvertTemperature(m.FeelsLike, f.Prefs.Temperature),
		TempMin:     units.ConvertTemperature(m.TempMin, f.Prefs.Temperature),
		TempMax:     units.ConvertTemperature(m.TempMax, f.Prefs.Temperature),
		Humidity:    m.Humidity,
		Pressure:    m.Pressure,
		WindSpeed:   units.ConvertWindSpeed(r.Wind.Speed, f.Prefs.Wind),
		Arrow:       condition.WindArrow(r.Wind.Deg),
	}

	var b strings.Builder
	if err := f.tpl.Execute(&b, v); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return f.paint(primary.Main, b.String()), nil
}

// FormatForecast renders one line per forecast step. Steps without a
// condition are rendered without description and color.
func (f *Formatter) FormatForecast(fc *weather.Forecast) (string, error) {
	if fc == nil || len(fc.List) == 0 {
		return "", errors.New("forecast has no entries")
	}

	var b strings.Builder
	location := fc.City.Name
	if fc.City.Country != "" {
		location += ", " + fc.City.Country
	}
	b.WriteString(fmt.Sprintf("Forecast for %s:", location))

	for _, e := range fc.List {
		var category, description string
		if len(e.Conditions) > 0 {
			category = e.Conditions[0].Main
			description = e.Conditions[0].Description
		}
		line := fmt.Sprintf("%s  %.1f%s %s",
			e.DtTxt,
			units.ConvertTemperature(e.Measurements.Temp, f.Prefs.Temperature), f.Prefs.Temperature.Symbol(),
			condition.TemperatureEmoji(e.Measurements.Temp))
		if description != "" {
			line += " " + description
		}
		line += fmt.Sprintf(", wind %.1f %s", units.ConvertWindSpeed(e.Wind.Speed, f.Prefs.Wind), f.Prefs.Wind.Symbol())
		if arrow := condition.WindArrow(e.Wind.Deg); arrow != "" {
			line += " " + arrow
		}
		b.WriteString("\n")
		b.WriteString(f.paint(category, line))
	}
	return b.String(), nil
}

func (f *Formatter) paint(category, s string) string {
	if !f.Color {
		return s
	}
	return condition.ColorFor(category).Sprint(s)
}
