package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// CityRefresher is the part of the weather service the scheduler drives.
type CityRefresher interface {
	CityNames() []string
	RefreshCities(ctx context.Context) ([]weather.CityConditions, error)
}

// Scheduler periodically refreshes the reference-city panel.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   CityRefresher
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service CityRefresher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the periodic job and starts the underlying scheduler. The
// first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.service.CityNames()) == 0 {
		log.Println("scheduler: no reference cities configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) run() {
	log.Println("scheduler: refreshing reference cities")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	cities, err := s.service.RefreshCities(ctx)
	if err != nil {
		log.Printf("scheduler: city refresh failed: %v", err)
		return
	}
	log.Printf("scheduler: completed city refresh (%d cities)", len(cities))
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
