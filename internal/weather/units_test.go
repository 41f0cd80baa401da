package weather

import "testing"

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]DisplayUnit{
		"":           Celsius,
		"c":          Celsius,
		"Celsius":    Celsius,
		"f":          Fahrenheit,
		"FAHRENHEIT": Fahrenheit,
	} {
		got, err := ParseUnit(in)
		if err != nil || got != want {
			t.Errorf("ParseUnit(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseUnit("kelvin"); err == nil {
		t.Errorf("expected error for kelvin")
	}
}

func TestDisplayUnit(t *testing.T) {
	if Celsius.Toggle() != Fahrenheit || Fahrenheit.Toggle() != Celsius {
		t.Fatalf("toggle is not an involution")
	}
	if got := Fahrenheit.Temp(20, 68); got != 68 {
		t.Errorf("Fahrenheit.Temp = %v", got)
	}
	if got := Celsius.Temp(20, 68); got != 20 {
		t.Errorf("Celsius.Temp = %v", got)
	}
	if Celsius.Symbol() != "°C" || Fahrenheit.Symbol() != "°F" {
		t.Errorf("unexpected symbols")
	}
	if Fahrenheit.Wind(16, 10) != 10 || Fahrenheit.WindLabel() != "mph" {
		t.Errorf("Fahrenheit should pair with mph")
	}
	if Celsius.Wind(16, 10) != 16 || Celsius.WindLabel() != "km/h" {
		t.Errorf("Celsius should pair with km/h")
	}
}
