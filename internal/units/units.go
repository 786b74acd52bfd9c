package units

import (
	"fmt"
	"strings"
)

// Temperature is the unit a temperature is displayed in.
type Temperature int

const (
	Celsius Temperature = iota
	Fahrenheit
)

// WindSpeed is the unit a wind speed is displayed in.
type WindSpeed int

const (
	MetersPerSecond WindSpeed = iota
	KilometersPerHour
	MilesPerHour
)

// ParseTemperature accepts celsius, c, fahrenheit or f in any case.
func ParseTemperature(s string) (Temperature, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c":
		return Celsius, nil
	case "fahrenheit", "f":
		return Fahrenheit, nil
	}
	return Celsius, fmt.Errorf("unknown temperature unit %q", s)
}

// ParseWindSpeed accepts m/s, km/h and mph plus their common spellings.
func ParseWindSpeed(s string) (WindSpeed, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m/s", "ms", "mps":
		return MetersPerSecond, nil
	case "km/h", "kmh", "kph":
		return KilometersPerHour, nil
	case "mph":
		return MilesPerHour, nil
	}
	return MetersPerSecond, fmt.Errorf("unknown wind speed unit %q", s)
}

// ConvertTemperature converts a Celsius value into unit. The result is not rounded.
func ConvertTemperature(celsius float64, unit Temperature) float64 {
	if unit == Fahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// ConvertWindSpeed converts meters per second into unit.
func ConvertWindSpeed(mps float64, unit WindSpeed) float64 {
	switch unit {
	case KilometersPerHour:
		return mps * 3.6
	case MilesPerHour:
		return mps * 2.237
	}
	return mps
}

func (t Temperature) Symbol() string {
	if t == Fahrenheit {
		return "°F"
	}
	return "°C"
}

func (t Temperature) String() string {
	if t == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

func (w WindSpeed) Symbol() string {
	switch w {
	case KilometersPerHour:
		return "km/h"
	case MilesPerHour:
		return "mph"
	}
	return "m/s"
}

func (w WindSpeed) String() string {
	return w.Symbol()
}
