package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

var (
	// ErrNotFound is returned when nothing usable is stored for a key.
	ErrNotFound = errors.New("no weather data for location")
)

type reportEntry struct {
	report  weather.Report
	savedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory store holding the latest
// report per query and the latest reference-city panel.
type MemoryStore struct {
	mu sync.RWMutex

	// key: query key, value: latest report
	reports map[string]reportEntry

	cities        []weather.CityConditions
	citiesSavedAt time.Time

	// retention configuration
	maxAge     time.Duration // entries older than this are treated as missing
	maxEntries int           // max number of stored reports (0 = unlimited)

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxAge is <= 0, entries never expire; if maxEntries is <= 0, the number
// of stored reports is unlimited.
func NewMemoryStore(maxAge time.Duration, maxEntries int) *MemoryStore {
	return &MemoryStore{
		reports:    make(map[string]reportEntry),
		maxAge:     maxAge,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// SaveReport replaces the stored report for key and enforces retention.
func (s *MemoryStore) SaveReport(key string, report weather.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.reports[key] = reportEntry{report: report, savedAt: now}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := now.Add(-s.maxAge)
		for k, e := range s.reports {
			if e.savedAt.Before(cutoff) {
				delete(s.reports, k)
			}
		}
	}

	// Enforce retention by count, dropping the oldest entries.
	for s.maxEntries > 0 && len(s.reports) > s.maxEntries {
		var oldestKey string
		var oldest time.Time
		for k, e := range s.reports {
			if oldestKey == "" || e.savedAt.Before(oldest) {
				oldestKey, oldest = k, e.savedAt
			}
		}
		delete(s.reports, oldestKey)
	}
}

// GetReport returns the report stored for key.
func (s *MemoryStore) GetReport(key string) (weather.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.reports[key]
	if !ok || s.expired(e.savedAt) {
		return weather.Report{}, ErrNotFound
	}
	return e.report, nil
}

// SaveCities replaces the reference-city panel.
func (s *MemoryStore) SaveCities(cities []weather.CityConditions) {
	cp := make([]weather.CityConditions, len(cities))
	copy(cp, cities)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities = cp
	s.citiesSavedAt = s.now()
}

// GetCities returns the reference-city panel.
func (s *MemoryStore) GetCities() ([]weather.CityConditions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.cities) == 0 || s.expired(s.citiesSavedAt) {
		return nil, ErrNotFound
	}
	cp := make([]weather.CityConditions, len(s.cities))
	copy(cp, s.cities)
	return cp, nil
}

// Len returns the number of stored reports, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

func (s *MemoryStore) expired(savedAt time.Time) bool {
	return s.maxAge > 0 && s.now().Sub(savedAt) > s.maxAge
}
