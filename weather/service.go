package weather

import (
	"context"
	"log"
	"strings"
	"time"

	"weather-now/datasource"
	"weather-now/models"
)

// Clock abstracts the wall clock so the current-hour lookup can be tested
type Clock interface {
	Now() time.Time
}

// RealClock reads the local system time
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Service turns a place name into the weather for the current local hour.
// It holds no state between calls.
type Service struct {
	geocoder  datasource.Geocoder
	forecasts datasource.ForecastSource
	clock     Clock
}

// NewService creates a service backed by the given geocoder and forecast source
func NewService(geocoder datasource.Geocoder, forecasts datasource.ForecastSource) *Service {
	return &Service{
		geocoder:  geocoder,
		forecasts: forecasts,
		clock:     RealClock{},
	}
}

// SetClock changes the clock used to pick the current hour
func (s *Service) SetClock(c Clock) {
	s.clock = c
}

// FetchWeather returns the current-hour snapshot for name
func (s *Service) FetchWeather(ctx context.Context, name string) (models.Snapshot, error) {
	report, err := s.Lookup(ctx, name)
	if err != nil {
		return models.Snapshot{}, err
	}
	return report.Snapshot, nil
}

// Lookup geocodes name, takes the first candidate and reads the forecast row
// for the current local hour. Errors are *datasource.FetchError values or
// datasource.ErrEmptyLocation.
func (s *Service) Lookup(ctx context.Context, name string) (models.Report, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Report{}, datasource.ErrEmptyLocation
	}

	candidates, err := s.geocoder.Geocode(ctx, name)
	if err != nil {
		return models.Report{}, err
	}
	if len(candidates) == 0 {
		return models.Report{}, datasource.NotFound(name)
	}
	location := candidates[0]

	series, err := s.forecasts.FetchHourly(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return models.Report{}, err
	}

	hour := CurrentHour(s.clock.Now())
	index, found := FindHourIndex(series.Time, hour)
	if !found {
		log.Printf("No hourly entry for %s at %s, using first hour of series", location.Name, hour)
	}

	snapshot, err := SnapshotAt(series, index)
	if err != nil {
		return models.Report{}, datasource.ParseFailure("forecast", err)
	}

	report := models.Report{
		Location: location,
		Snapshot: snapshot,
	}
	if index < len(series.Time) {
		report.Time = series.Time[index]
	}
	return report, nil
}
