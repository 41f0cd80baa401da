package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// User-visible failure messages.
const (
	MsgInvalidLocation = "Invalid location. Please enter a valid city."
	MsgFetchFailed     = "Failed to fetch weather data. Please try again."
	MsgLocationFailed  = "Failed to fetch weather for current location."
	MsgCitiesFailed    = "Failed to fetch city data."
)

// ErrInvalidLocation is returned by providers when the place cannot be resolved.
var ErrInvalidLocation = errors.New("invalid location")

// ErrNoCities is returned when no reference cities are configured.
var ErrNoCities = errors.New("no reference cities configured")

// ServiceConfig holds the controller settings.
type ServiceConfig struct {
	DefaultPlace   string
	Cities         []string
	ForecastDays   int
	RequestTimeout time.Duration
}

// Service owns the fetch lifecycle: it talks to the provider, keeps the latest
// report per query in the store and renders dashboards.
type Service struct {
	store    Store
	provider Provider
	geocoder Geocoder
	renderer *Renderer
	cfg      ServiceConfig
}

// NewService creates a new Service. geocoder may be nil.
func NewService(store Store, provider Provider, geocoder Geocoder, renderer *Renderer, cfg ServiceConfig) *Service {
	if cfg.ForecastDays <= 0 {
		cfg.ForecastDays = 7
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if renderer == nil {
		renderer = NewRenderer(nil, nil)
	}
	return &Service{
		store:    store,
		provider: provider,
		geocoder: geocoder,
		renderer: renderer,
		cfg:      cfg,
	}
}

// DashboardRequest is one render of the dashboard.
type DashboardRequest struct {
	Query   Query
	Unit    DisplayUnit
	View    View
	Refresh bool
}

// Renderer exposes the service's renderer.
func (s *Service) Renderer() *Renderer {
	return s.renderer
}

// CityNames returns the configured reference-city names.
func (s *Service) CityNames() []string {
	return s.cfg.Cities
}

// DefaultPlace is the place shown when the request names none.
func (s *Service) DefaultPlace() string {
	return s.cfg.DefaultPlace
}

// Dashboard returns the view model for req. Fetch failures are reported in
// Dashboard.Error; the returned error is the underlying cause, for logging.
func (s *Service) Dashboard(ctx context.Context, req DashboardRequest) (Dashboard, error) {
	q := req.Query
	if !q.HasCoordinates() && strings.TrimSpace(q.Place) == "" {
		q.Place = s.cfg.DefaultPlace
	}
	label := q.Place
	if q.HasCoordinates() {
		label = FormatCoordinates(*q.Lat, *q.Lon)
	}

	report, err := s.Report(ctx, q, req.Refresh)
	if err != nil {
		return s.renderer.Empty(label, req.Unit, req.View, failureMessage(q, err)), err
	}

	d := s.renderer.Render(label, report, req.Unit, req.View)
	if q.HasCoordinates() {
		d.Query = report.Place.Name
		if s.geocoder != nil {
			if geo, err := s.geocoder.ReverseLabel(ctx, *q.Lat, *q.Lon); err != nil {
				log.Printf("service: reverse geocode failed for %s: %v", label, err)
			} else {
				d.GeoLabel = geo
			}
		}
	}
	return d, nil
}

// Report returns the stored report for q, fetching a fresh one when none is
// stored or refresh is set. A fresh report replaces the stored one wholesale.
func (s *Service) Report(ctx context.Context, q Query, refresh bool) (Report, error) {
	key := q.Key()
	if !refresh {
		if r, err := s.store.GetReport(key); err == nil {
			return r, nil
		}
	}

	if s.provider == nil {
		log.Printf("ERROR: No provider available to fetch weather data for %s", key)
		return Report{}, fmt.Errorf("no weather provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	r, err := s.provider.Forecast(ctx, q, s.cfg.ForecastDays)
	if err != nil {
		log.Printf("provider %s forecast failed for %s: %v", s.provider.Name(), key, err)
		return Report{}, err
	}
	if r.FetchedAt.IsZero() {
		r.FetchedAt = time.Now().UTC()
	}
	s.store.SaveReport(key, r)
	return r, nil
}

// Cities returns the reference-city panel, fetching it when nothing is stored.
func (s *Service) Cities(ctx context.Context) ([]CityConditions, error) {
	if cities, err := s.store.GetCities(); err == nil {
		return cities, nil
	}
	return s.RefreshCities(ctx)
}

// RefreshCities fetches every reference city concurrently and stores the
// result. Any single failure fails the whole panel and leaves the stored
// panel untouched.
func (s *Service) RefreshCities(ctx context.Context) ([]CityConditions, error) {
	if len(s.cfg.Cities) == 0 {
		return nil, ErrNoCities
	}
	if s.provider == nil {
		return nil, fmt.Errorf("no weather provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		results  = make([]CityConditions, len(s.cfg.Cities))
	)

	for i, city := range s.cfg.Cities {
		i, city := i, city
		wg.Add(1)
		go func() {
			defer wg.Done()

			c, err := s.provider.Current(ctx, city)
			if err != nil {
				log.Printf("provider %s current failed for %s: %v", s.provider.Name(), city, err)
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("city %s: %w", city, err)
				}
				mu.Unlock()
				return
			}
			c.City = city
			results[i] = c
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	s.store.SaveCities(results)
	return results, nil
}

func failureMessage(q Query, err error) string {
	switch {
	case q.HasCoordinates():
		return MsgLocationFailed
	case errors.Is(err, ErrInvalidLocation):
		return MsgInvalidLocation
	default:
		return MsgFetchFailed
	}
}
