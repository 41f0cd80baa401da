package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

const defaultCities = "New Delhi,Lucknow,Paris,Washington,Kathmandu"

type AppConfig struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string // empty = public endpoint
	GeocoderAPIKey    string // optional, enables reverse geocoding

	// DefaultPlace is shown when a request names no place.
	DefaultPlace string

	// Cities is the reference-city panel, in display order.
	Cities []string

	// DisplayZone is the zone timestamps are rendered in.
	DisplayZone *time.Location

	ForecastDays int

	// NormalizeConditions makes condition lookup ignore case and surrounding spaces.
	NormalizeConditions bool

	// In-memory store retention.
	CacheMaxAge     time.Duration
	CacheMaxEntries int

	// CitiesRefreshInterval controls how often the city panel is refetched.
	CitiesRefreshInterval time.Duration

	HTTPTimeout time.Duration

	// Outbound rate limit for the provider.
	ProviderRPS   float64
	ProviderBurst int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.WeatherAPIBaseURL = os.Getenv("WEATHERAPI_BASE_URL")
	cfg.GeocoderAPIKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")
	cfg.DefaultPlace = getenvDefault("DEFAULT_PLACE", "New Delhi")
	cfg.Cities = common.SplitList(getenvDefault("REFERENCE_CITIES", defaultCities))

	zone := getenvDefault("DISPLAY_TIMEZONE", weather.DefaultDisplayZone)
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE: %w", err)
	}
	cfg.DisplayZone = loc

	if cfg.ForecastDays, err = getenvInt("FORECAST_DAYS", 7); err != nil {
		return nil, err
	}
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 14 {
		return nil, fmt.Errorf("invalid FORECAST_DAYS: %d (want 1-14)", cfg.ForecastDays)
	}

	normalize, err := strconv.ParseBool(getenvDefault("CONDITION_NORMALIZE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONDITION_NORMALIZE: %w", err)
	}
	cfg.NormalizeConditions = normalize

	if cfg.CacheMaxAge, err = getenvDuration("CACHE_MAX_AGE", "10m"); err != nil {
		return nil, err
	}
	if cfg.CacheMaxEntries, err = getenvInt("CACHE_MAX_ENTRIES", 256); err != nil {
		return nil, err
	}

	if cfg.CitiesRefreshInterval, err = getenvDuration("CITIES_REFRESH_INTERVAL", "15m"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	// The scheduler fetches every reference city at startup; the burst leaves
	// room for interactive searches on top of that.
	if cfg.ProviderRPS, err = getenvFloat("PROVIDER_RPS", 2); err != nil {
		return nil, err
	}
	if cfg.ProviderBurst, err = getenvInt("PROVIDER_BURST", 10); err != nil {
		return nil, err
	}
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
