package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(maxAge time.Duration, maxEntries int) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 10, 21, 12, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(maxAge, maxEntries)
	s.now = clock.now
	return s, clock
}

func report(name string) weather.Report {
	return weather.Report{Place: weather.Place{Name: name}}
}

func TestSaveReportReplaces(t *testing.T) {
	s, _ := newTestStore(0, 0)

	s.SaveReport("place:paris", report("Paris"))
	s.SaveReport("place:paris", report("Paris, FR"))

	got, err := s.GetReport("place:paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Place.Name != "Paris, FR" {
		t.Fatalf("expected latest report, got %q", got.Place.Name)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}

	if _, err := s.GetReport("place:lucknow"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReportExpiry(t *testing.T) {
	s, clock := newTestStore(10*time.Minute, 0)

	s.SaveReport("place:paris", report("Paris"))
	clock.advance(9 * time.Minute)
	if _, err := s.GetReport("place:paris"); err != nil {
		t.Fatalf("expected fresh entry, got %v", err)
	}

	clock.advance(2 * time.Minute)
	if _, err := s.GetReport("place:paris"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired entry to be missing, got %v", err)
	}

	// Saving anything prunes expired entries.
	s.SaveReport("place:lucknow", report("Lucknow"))
	if s.Len() != 1 {
		t.Fatalf("expected expired entry to be pruned, have %d entries", s.Len())
	}
}

func TestMaxEntriesEvictsOldest(t *testing.T) {
	s, clock := newTestStore(0, 3)

	for i := 0; i < 5; i++ {
		s.SaveReport(fmt.Sprintf("place:%d", i), report(fmt.Sprint(i)))
		clock.advance(time.Second)
	}

	if s.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", s.Len())
	}
	for _, key := range []string{"place:0", "place:1"} {
		if _, err := s.GetReport(key); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected %s to be evicted", key)
		}
	}
	if _, err := s.GetReport("place:4"); err != nil {
		t.Errorf("expected newest entry to survive: %v", err)
	}
}

func TestCities(t *testing.T) {
	s, clock := newTestStore(15*time.Minute, 0)

	if _, err := s.GetCities(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty panel, got %v", err)
	}

	in := []weather.CityConditions{{City: "Paris"}, {City: "Kathmandu"}}
	s.SaveCities(in)
	in[0].City = "mutated"

	got, err := s.GetCities()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].City != "Paris" {
		t.Fatalf("stored panel aliased the caller's slice: %+v", got)
	}

	got[1].City = "mutated"
	again, _ := s.GetCities()
	if again[1].City != "Kathmandu" {
		t.Fatalf("returned panel aliased the stored slice")
	}

	clock.advance(16 * time.Minute)
	if _, err := s.GetCities(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired panel, got %v", err)
	}
}
