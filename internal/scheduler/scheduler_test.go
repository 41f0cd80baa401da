package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

type fakeRefresher struct {
	cities []string
	calls  chan struct{}
}

func (f *fakeRefresher) CityNames() []string { return f.cities }

func (f *fakeRefresher) RefreshCities(context.Context) ([]weather.CityConditions, error) {
	select {
	case f.calls <- struct{}{}:
	default:
	}
	return nil, nil
}

func TestStartWithoutCities(t *testing.T) {
	f := &fakeRefresher{calls: make(chan struct{}, 1)}
	s := New(time.Minute, f)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	select {
	case <-f.calls:
		t.Fatalf("refresh ran with no cities configured")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStartRefreshesImmediately(t *testing.T) {
	f := &fakeRefresher{cities: []string{"Paris"}, calls: make(chan struct{}, 1)}
	s := New(time.Hour, f)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	select {
	case <-f.calls:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected an immediate refresh")
	}
}
