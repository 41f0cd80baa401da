package weather

import (
	"context"
	"fmt"
)

// Provider abstracts the remote weather API (WeatherAPI.com in production).
type Provider interface {
	Name() string
	Forecast(ctx context.Context, q Query, days int) (Report, error)
	Current(ctx context.Context, city string) (CityConditions, error)
}

// Store is the contract the in-memory store must satisfy.
type Store interface {
	SaveReport(key string, report Report)
	GetReport(key string) (Report, error)
	SaveCities(cities []CityConditions)
	GetCities() ([]CityConditions, error)
}

// Geocoder turns coordinates into a human label. Optional.
type Geocoder interface {
	ReverseLabel(ctx context.Context, lat, lon float64) (string, error)
}

// FormatCoordinates renders a coordinate pair the way the provider's q parameter expects.
func FormatCoordinates(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}
