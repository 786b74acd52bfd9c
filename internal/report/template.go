package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

// Layout selects one of the built-in report templates.
type Layout int

const (
	Detailed Layout = iota
	Simple
	Compact
)

// ParseLayout accepts simple, detailed or compact in any case.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "detailed":
		return Detailed, nil
	case "simple":
		return Simple, nil
	case "compact":
		return Compact, nil
	}
	return Detailed, fmt.Errorf("unknown display format %q", s)
}

func (l Layout) String() string {
	switch l {
	case Simple:
		return "simple"
	case Compact:
		return "compact"
	}
	return "detailed"
}

const detailedTpl = `Weather in {{.Location}}: {{.Description}} {{.Emoji}}
> Temperature: {{temp .Temp}} (feels like {{temp .FeelsLike}})
> Range: {{temp .TempMin}} - {{temp .TempMax}}
> Humidity: {{printf "%.1f" .Humidity}}%
> Pressure: {{printf "%.1f" .Pressure}} hPa
> Wind: {{wind .WindSpeed}}{{with .Arrow}} {{.}}{{end}}`

const simpleTpl = `Weather in {{.Location}}: {{.Description}} {{.Emoji}}
> Temperature: {{temp .Temp}}
> Humidity: {{printf "%.1f" .Humidity}}%
> Pressure: {{printf "%.1f" .Pressure}} hPa
> Wind Speed: {{wind .WindSpeed}}{{with .Arrow}} {{.}}{{end}}`

const compactTpl = `{{.Location}}: {{temp .Temp}} {{.Emoji}} {{.Description}}, {{printf "%.1f" .Humidity}}%, {{printf "%.1f" .Pressure}} hPa, wind {{wind .WindSpeed}}{{with .Arrow}} {{.}}{{end}}`

func (f *Formatter) funcs() template.FuncMap {
	return template.FuncMap{
		"temp": func(v float64) string {
			return fmt.Sprintf("%.1f%s", v, f.Prefs.Temperature.Symbol())
		},
		"wind": func(v float64) string {
			return fmt.Sprintf("%.1f %s", v, f.Prefs.Wind.Symbol())
		},
	}
}

func (f *Formatter) builtin(l Layout) *template.Template {
	src := detailedTpl
	switch l {
	case Simple:
		src = simpleTpl
	case Compact:
		src = compactTpl
	}
	return template.Must(template.New(l.String()).Funcs(f.funcs()).Parse(src))
}

// LoadTemplate replaces the layout with a template read from path. The
// template sees the same fields and the temp and wind helpers.
func (f *Formatter) LoadTemplate(path string) error {
	tpl, err := template.New(filepath.Base(path)).Funcs(f.funcs()).ParseFiles(path)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	f.tpl = tpl
	return nil
}
