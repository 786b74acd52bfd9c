package condition

import (
	"fmt"
	"testing"

	"github.com/fatih/color"
)

func TestTemperatureEmoji(t *testing.T) {
	tests := []struct {
		celsius float64
		want    string
	}{
		{-12, "❄️"},
		{-0.1, "❄️"},
		{0.0, "☁️"},
		{9.999, "☁️"},
		{10.0, "⛅"},
		{19.99, "⛅"},
		{20.0, "🌤️"},
		{29.999, "🌤️"},
		{30.0, "🔥"},
		{45, "🔥"},
	}
	for _, tt := range tests {
		if got := TemperatureEmoji(tt.celsius); got != tt.want {
			t.Errorf("TemperatureEmoji(%v): expected %s, got %s", tt.celsius, tt.want, got)
		}
	}
}

func deg(v float64) *float64 { return &v }

func TestWindArrow(t *testing.T) {
	tests := []struct {
		deg  *float64
		want string
	}{
		{nil, ""},
		{deg(0), "↑"},
		{deg(22.4), "↑"},
		{deg(22.5), "↗"},
		{deg(45), "↗"},
		{deg(90), "→"},
		{deg(135), "↘"},
		{deg(180), "↓"},
		{deg(225), "↙"},
		{deg(270), "←"},
		{deg(315), "↖"},
		{deg(350), "↑"},
		{deg(360), "↑"},
		{deg(450), "→"},
		{deg(-10), "↑"},
		{deg(-90), "←"},
		{deg(-720), "↑"},
	}
	for _, tt := range tests {
		if got := WindArrow(tt.deg); got != tt.want {
			in := "nil"
			if tt.deg != nil {
				in = fmt.Sprintf("%g", *tt.deg)
			}
			t.Errorf("WindArrow(%s): expected %q, got %q", in, tt.want, got)
		}
	}

	if WindArrow(deg(-10)) != WindArrow(deg(350)) {
		t.Error("expected -10 and 350 degrees to share a bucket")
	}
}

func TestWindArrowTotal(t *testing.T) {
	for d := -1080.0; d <= 1080; d += 7.3 {
		if got := WindArrow(deg(d)); got == "" {
			t.Fatalf("WindArrow(%v) returned empty string", d)
		}
	}
	if got := WindArrow(deg(337.4)); got != "↖" {
		t.Errorf("expected ↖ just below 337.5, got %s", got)
	}
}

func TestColorFor(t *testing.T) {
	tests := map[string]Tag{
		"Clear":        Yellow,
		"Clouds":       Blue,
		"Rain":         Cyan,
		"Drizzle":      Cyan,
		"Snow":         Cyan,
		"Thunderstorm": Purple,
		"Fog":          Default,
		"clear":        Default,
		"":             Default,
	}
	for in, want := range tests {
		if got := ColorFor(in); got != want {
			t.Errorf("ColorFor(%q): expected %s, got %s", in, want, got)
		}
	}

	if ColorFor("Thunderstorm") == ColorFor("Clear") {
		t.Error("expected Thunderstorm and Clear to use different tags")
	}
}

func TestSprint(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	color.NoColor = true
	if got := Yellow.Sprint("sunny"); got != "sunny" {
		t.Errorf("expected plain text with colors disabled, got %q", got)
	}

	color.NoColor = false
	if got := Default.Sprint("fog"); got != "fog" {
		t.Errorf("expected default tag to leave text untouched, got %q", got)
	}
	if got := Purple.Sprint("storm"); got == "storm" {
		t.Error("expected purple tag to add escape codes")
	}
}
