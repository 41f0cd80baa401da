// Package geo labels coordinates with a place name using the Google
// Geocoding API.
package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kelvins/geocoder"
)

// ErrNoResult is returned when the geocoder knows nothing about the coordinates.
var ErrNoResult = errors.New("no geocoding result")

// reverseFunc matches geocoder.GeocodingReverse.
type reverseFunc func(geocoder.Location) ([]geocoder.Address, error)

// GoogleGeocoder resolves coordinates to "City, Country" labels.
type GoogleGeocoder struct {
	reverse reverseFunc
}

// NewGoogleGeocoder configures the library with apiKey. It returns nil when
// the key is empty so callers can pass the result straight to weather.NewService.
// The library keeps its key in a package variable, so call this once at startup.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	if apiKey == "" {
		return nil
	}
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{reverse: geocoder.GeocodingReverse}
}

// ReverseLabel implements weather.Geocoder. The library call is not
// cancellable; ctx is only checked before and after it.
func (g *GoogleGeocoder) ReverseLabel(ctx context.Context, lat, lon float64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	addresses, err := g.reverse(geocoder.Location{Latitude: lat, Longitude: lon})
	if err != nil {
		return "", fmt.Errorf("reverse geocode %.4f,%.4f: %w", lat, lon, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(addresses) == 0 {
		return "", ErrNoResult
	}
	return label(addresses[0]), nil
}

func label(a geocoder.Address) string {
	place := a.City
	if place == "" {
		place = a.County
	}
	if place == "" {
		place = a.State
	}

	switch {
	case place != "" && a.Country != "":
		return place + ", " + a.Country
	case place != "":
		return place
	default:
		return strings.TrimSpace(a.FormattedAddress)
	}
}
