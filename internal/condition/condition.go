// Package condition maps raw readings and provider condition categories to
// display hints: temperature emoji, terminal color tags and wind arrows.
package condition

import (
	"math"

	"github.com/fatih/color"
)

// Tag is a display color picked from a condition category.
type Tag int

const (
	Default Tag = iota
	Yellow
	Blue
	Cyan
	Purple
)

var arrows = [8]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// TemperatureEmoji picks an emoji for a Celsius temperature. Each band is
// closed on its lower bound, so 0.0 belongs to the "< 10" band.
func TemperatureEmoji(celsius float64) string {
	switch {
	case celsius < 0:
		return "❄️"
	case celsius < 10:
		return "☁️"
	case celsius < 20:
		return "⛅"
	case celsius < 30:
		return "🌤️"
	default:
		return "🔥"
	}
}

// ColorFor matches category case-sensitively; unknown categories get Default.
func ColorFor(category string) Tag {
	switch category {
	case "Clear":
		return Yellow
	case "Clouds":
		return Blue
	case "Rain", "Drizzle", "Snow":
		return Cyan
	case "Thunderstorm":
		return Purple
	}
	return Default
}

// WindArrow buckets a direction in degrees into one of eight compass arrows,
// north first and clockwise. A nil direction yields an empty string.
func WindArrow(deg *float64) string {
	if deg == nil {
		return ""
	}
	r := math.Mod(*deg+22.5, 360)
	if r < 0 {
		r += 360
	}
	idx := int(math.Floor(r/45)) % len(arrows)
	return arrows[idx]
}

// Sprint wraps s in the tag's bright terminal color. Default leaves s as is.
func (t Tag) Sprint(s string) string {
	switch t {
	case Yellow:
		return color.New(color.FgHiYellow).Sprint(s)
	case Blue:
		return color.New(color.FgHiBlue).Sprint(s)
	case Cyan:
		return color.New(color.FgHiCyan).Sprint(s)
	case Purple:
		return color.New(color.FgHiMagenta).Sprint(s)
	}
	return s
}

func (t Tag) String() string {
	switch t {
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Cyan:
		return "cyan"
	case Purple:
		return "purple"
	}
	return "default"
}
