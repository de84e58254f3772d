package datasource

import (
	"context"

	"weather-now/models"
)

// Geocoder resolves a free-text place name into candidate locations
type Geocoder interface {
	// Geocode returns candidates in the order the upstream ranked them.
	// Zero candidates is not an error.
	Geocode(ctx context.Context, name string) ([]models.Location, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource fetches the hourly forecast series for a coordinate
type ForecastSource interface {
	FetchHourly(ctx context.Context, latitude, longitude float64) (models.HourlySeries, error)

	// Name returns the source's name
	Name() string
}
