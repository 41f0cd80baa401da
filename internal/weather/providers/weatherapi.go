package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	weatherAPIBaseURL = "https://api.weatherapi.com/v1"

	// maxForecastDays is the longest forecast WeatherAPI.com serves.
	maxForecastDays = 14
)

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	limiter *rate.Limiter
	circuit *gobreaker.CircuitBreaker
}

// NewWeatherAPIProvider builds the provider. baseURL may be empty for the public endpoint.
func NewWeatherAPIProvider(httpCfg HTTPClientConfig, apiKey, baseURL string) *WeatherAPIProvider {
	if baseURL == "" {
		baseURL = weatherAPIBaseURL
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: httpCfg,
		limiter: newLimiter(httpCfg),
		circuit: newBreaker("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

type apiCondition struct {
	Text string `json:"text"`
}

type apiLocation struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TZID      string  `json:"tz_id"`
	Localtime string  `json:"localtime"`
}

type apiCurrent struct {
	TempC      float64      `json:"temp_c"`
	TempF      float64      `json:"temp_f"`
	Condition  apiCondition `json:"condition"`
	Humidity   int          `json:"humidity"`
	WindKph    float64      `json:"wind_kph"`
	WindMph    float64      `json:"wind_mph"`
	PressureMb float64      `json:"pressure_mb"`
	UV         float64      `json:"uv"`
	AirQuality struct {
		USEPAIndex int `json:"us-epa-index"`
	} `json:"air_quality"`
}

type apiHour struct {
	Time         string       `json:"time"`
	TempC        float64      `json:"temp_c"`
	TempF        float64      `json:"temp_f"`
	Condition    apiCondition `json:"condition"`
	WindKph      float64      `json:"wind_kph"`
	WindMph      float64      `json:"wind_mph"`
	Humidity     int          `json:"humidity"`
	ChanceOfRain int          `json:"chance_of_rain"`
}

type apiForecastDay struct {
	Date string `json:"date"`
	Day  struct {
		MaxTempC   float64      `json:"maxtemp_c"`
		MaxTempF   float64      `json:"maxtemp_f"`
		MinTempC   float64      `json:"mintemp_c"`
		MinTempF   float64      `json:"mintemp_f"`
		AvgTempC   float64      `json:"avgtemp_c"`
		AvgTempF   float64      `json:"avgtemp_f"`
		MaxWindKph float64      `json:"maxwind_kph"`
		MaxWindMph float64      `json:"maxwind_mph"`
		Condition  apiCondition `json:"condition"`
	} `json:"day"`
	Astro struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"astro"`
	Hour []apiHour `json:"hour"`
}

type forecastPayload struct {
	Location apiLocation `json:"location"`
	Current  apiCurrent  `json:"current"`
	Forecast struct {
		ForecastDay []apiForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type currentPayload struct {
	Location apiLocation `json:"location"`
	Current  apiCurrent  `json:"current"`
}

type errorPayload struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Forecast fetches forecast.json for q.
func (p *WeatherAPIProvider) Forecast(ctx context.Context, q weather.Query, days int) (weather.Report, error) {
	if days <= 0 {
		return weather.Report{}, fmt.Errorf("days must be greater than zero")
	}
	if days > maxForecastDays {
		days = maxForecastDays
	}

	values := url.Values{}
	values.Set("q", queryParam(q))
	values.Set("days", strconv.Itoa(days))
	values.Set("aqi", "yes")
	values.Set("alerts", "no")

	var payload forecastPayload
	if err := p.get(ctx, "forecast.json", values, &payload); err != nil {
		return weather.Report{}, err
	}

	bundle := make(weather.ForecastBundle, 0, len(payload.Forecast.ForecastDay))
	for _, d := range payload.Forecast.ForecastDay {
		bundle = append(bundle, toDailyForecast(d))
	}

	return weather.Report{
		Place:     toPlace(payload.Location),
		Current:   toCurrent(payload.Current),
		Forecast:  bundle,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// Current fetches current.json for a city name.
func (p *WeatherAPIProvider) Current(ctx context.Context, city string) (weather.CityConditions, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("aqi", "yes")

	var payload currentPayload
	if err := p.get(ctx, "current.json", values, &payload); err != nil {
		return weather.CityConditions{}, err
	}

	return weather.CityConditions{
		City:      city,
		Place:     toPlace(payload.Location),
		Current:   toCurrent(payload.Current),
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (p *WeatherAPIProvider) get(ctx context.Context, endpoint string, values url.Values, out any) error {
	if p.apiKey == "" {
		return fmt.Errorf("weatherapi api key is not configured")
	}
	values.Set("key", p.apiKey)

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.limiter, p.circuit, buildRequest)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", endpoint, err)
	}
	return nil
}

// statusError maps a non-200 WeatherAPI.com response to an error. 400 is how
// the API reports an unknown place.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	msg := ""
	var ep errorPayload
	if json.Unmarshal(body, &ep) == nil && ep.Error.Message != "" {
		msg = ep.Error.Message
	}

	if resp.StatusCode == http.StatusBadRequest {
		if msg == "" {
			return weather.ErrInvalidLocation
		}
		return fmt.Errorf("%w: %s", weather.ErrInvalidLocation, msg)
	}
	if msg != "" {
		return fmt.Errorf("%w: %d: %s", errUnexpected, resp.StatusCode, msg)
	}
	return fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
}

// queryParam renders q as WeatherAPI's "q": a place name or "lat,lon".
func queryParam(q weather.Query) string {
	if q.HasCoordinates() {
		return weather.FormatCoordinates(*q.Lat, *q.Lon)
	}
	return strings.TrimSpace(q.Place)
}

func toPlace(l apiLocation) weather.Place {
	return weather.Place{
		Name:      l.Name,
		Region:    l.Region,
		Country:   l.Country,
		Lat:       l.Lat,
		Lon:       l.Lon,
		TZID:      l.TZID,
		LocalTime: l.Localtime,
	}
}

func toCurrent(c apiCurrent) weather.Current {
	return weather.Current{
		TempC:         c.TempC,
		TempF:         c.TempF,
		Condition:     c.Condition.Text,
		Humidity:      c.Humidity,
		WindKph:       c.WindKph,
		WindMph:       c.WindMph,
		PressureMb:    c.PressureMb,
		UV:            c.UV,
		AirQualityEPA: c.AirQuality.USEPAIndex,
	}
}

func toDailyForecast(d apiForecastDay) weather.DailyForecast {
	hours := make([]weather.HourlyRecord, 0, len(d.Hour))
	for _, h := range d.Hour {
		hours = append(hours, weather.HourlyRecord{
			Time:         h.Time,
			TempC:        h.TempC,
			TempF:        h.TempF,
			Condition:    h.Condition.Text,
			WindKph:      h.WindKph,
			WindMph:      h.WindMph,
			Humidity:     h.Humidity,
			ChanceOfRain: h.ChanceOfRain,
		})
	}

	return weather.DailyForecast{
		Date:  d.Date,
		Hours: hours,
		Summary: weather.DaySummary{
			MaxTempC:   d.Day.MaxTempC,
			MaxTempF:   d.Day.MaxTempF,
			MinTempC:   d.Day.MinTempC,
			MinTempF:   d.Day.MinTempF,
			AvgTempC:   d.Day.AvgTempC,
			AvgTempF:   d.Day.AvgTempF,
			MaxWindKph: d.Day.MaxWindKph,
			MaxWindMph: d.Day.MaxWindMph,
			Condition:  d.Day.Condition.Text,
			Astro: weather.Astro{
				Sunrise: d.Astro.Sunrise,
				Sunset:  d.Astro.Sunset,
			},
		},
	}
}

var _ weather.Provider = (*WeatherAPIProvider)(nil)
