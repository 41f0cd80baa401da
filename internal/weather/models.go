package weather

import (
	"strings"
	"time"
)

// HoursPerDay is the number of hourly records in one DailyForecast.
const HoursPerDay = 24

// Place describes the location a Report was fetched for, as the provider resolved it.
type Place struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TZID      string  `json:"tzId"`
	LocalTime string  `json:"localTime"` // location-local, no offset
}

// Label is the "Name, Country" header shown on the dashboard.
func (p Place) Label() string {
	switch {
	case p.Name == "":
		return p.Country
	case p.Country == "":
		return p.Name
	default:
		return p.Name + ", " + p.Country
	}
}

// Current holds the provider's current conditions for a place.
type Current struct {
	TempC      float64 `json:"tempC"`
	TempF      float64 `json:"tempF"`
	Condition  string  `json:"condition"`
	Humidity   int     `json:"humidity"`
	WindKph    float64 `json:"windKph"`
	WindMph    float64 `json:"windMph"`
	PressureMb float64 `json:"pressureMb"`
	UV         float64 `json:"uv"`

	// AirQualityEPA is the US-EPA index (1-6); 0 when the provider omitted it.
	AirQualityEPA int `json:"airQualityEpa,omitempty"`
}

// HourlyRecord is one hour of a daily forecast.
type HourlyRecord struct {
	Time         string  `json:"time"` // location-local, e.g. "2024-10-21 13:00"
	TempC        float64 `json:"tempC"`
	TempF        float64 `json:"tempF"`
	Condition    string  `json:"condition"`
	WindKph      float64 `json:"windKph"`
	WindMph      float64 `json:"windMph"`
	Humidity     int     `json:"humidity"`
	ChanceOfRain int     `json:"chanceOfRain"`
}

// Astro carries sunrise/sunset as the provider formats them ("06:12 AM").
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// DaySummary aggregates a forecast day.
type DaySummary struct {
	MaxTempC   float64 `json:"maxTempC"`
	MaxTempF   float64 `json:"maxTempF"`
	MinTempC   float64 `json:"minTempC"`
	MinTempF   float64 `json:"minTempF"`
	AvgTempC   float64 `json:"avgTempC"`
	AvgTempF   float64 `json:"avgTempF"`
	MaxWindKph float64 `json:"maxWindKph"`
	MaxWindMph float64 `json:"maxWindMph"`
	Condition  string  `json:"condition"`
	Astro      Astro   `json:"astro"`
}

// DailyForecast is a single forecast day. Hours is indexed by hour-of-day and
// normally holds exactly HoursPerDay entries.
type DailyForecast struct {
	Date    string         `json:"date"`
	Hours   []HourlyRecord `json:"hours"`
	Summary DaySummary     `json:"summary"`
}

// ForecastBundle is the ordered multi-day forecast for one place.
// Index 0 is today, index 1 tomorrow.
type ForecastBundle []DailyForecast

// Day returns the i-th day or nil when the bundle is too short.
func (b ForecastBundle) Day(i int) *DailyForecast {
	if i < 0 || i >= len(b) {
		return nil
	}
	return &b[i]
}

// Report is everything a single forecast fetch returns. A new Report replaces
// the previous one for the same place wholesale.
type Report struct {
	Place     Place          `json:"place"`
	Current   Current        `json:"current"`
	Forecast  ForecastBundle `json:"forecast"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// CityConditions is the current weather for one reference city.
type CityConditions struct {
	City      string    `json:"city"`
	Place     Place     `json:"place"`
	Current   Current   `json:"current"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Query identifies what to fetch: a free-text place or a coordinate pair.
type Query struct {
	Place string   `json:"place,omitempty"`
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
}

// HasCoordinates reports whether the query is a geolocation lookup.
func (q Query) HasCoordinates() bool {
	return q.Lat != nil && q.Lon != nil
}

// Key returns a canonical string key for indexing this query in stores.
func (q Query) Key() string {
	if q.HasCoordinates() {
		return "coords:" + FormatCoordinates(*q.Lat, *q.Lon)
	}
	return "place:" + strings.ToLower(strings.TrimSpace(q.Place))
}
