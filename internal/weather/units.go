package weather

import (
	"fmt"
	"strings"
)

// DisplayUnit selects which of the provider's paired values are shown.
type DisplayUnit string

const (
	Celsius    DisplayUnit = "celsius"
	Fahrenheit DisplayUnit = "fahrenheit"
)

// ParseUnit accepts "celsius"/"fahrenheit" and their one-letter forms.
// The empty string is Celsius.
func ParseUnit(s string) (DisplayUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("unknown display unit %q", s)
	}
}

// Toggle returns the other unit.
func (u DisplayUnit) Toggle() DisplayUnit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Temp picks the temperature for this unit.
func (u DisplayUnit) Temp(c, f float64) float64 {
	if u == Fahrenheit {
		return f
	}
	return c
}

// Symbol is the degree suffix ("°C").
func (u DisplayUnit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Wind picks the wind speed for this unit; Fahrenheit pairs with mph.
func (u DisplayUnit) Wind(kph, mph float64) float64 {
	if u == Fahrenheit {
		return mph
	}
	return kph
}

func (u DisplayUnit) WindLabel() string {
	if u == Fahrenheit {
		return "mph"
	}
	return "km/h"
}
