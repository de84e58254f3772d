package datasource

import (
	"context"
	"fmt"

	"weather-now/models"

	"golang.org/x/time/rate"
)

// Provider is implemented by sources that can both geocode and forecast
type Provider interface {
	Geocoder
	ForecastSource
}

// RateLimitedProvider wraps a Provider with one limiter per endpoint.
// Open-Meteo applies fair-use limits to the two hosts independently.
type RateLimitedProvider struct {
	provider        Provider
	geocodeLimiter  *rate.Limiter
	forecastLimiter *rate.Limiter
	name            string
}

// NewRateLimitedProvider creates a rate limited provider.
// rps is the maximum requests per second per endpoint (can be fractional),
// burst is the maximum burst size allowed.
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider:        provider,
		geocodeLimiter:  rate.NewLimiter(rate.Limit(rps), burst),
		forecastLimiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:            fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// Geocode implements Geocoder with rate limiting
func (r *RateLimitedProvider) Geocode(ctx context.Context, name string) ([]models.Location, error) {
	if err := r.geocodeLimiter.Wait(ctx); err != nil {
		return nil, networkError("geocode", fmt.Errorf("rate limit wait canceled: %w", err))
	}
	return r.provider.Geocode(ctx, name)
}

// FetchHourly implements ForecastSource with rate limiting
func (r *RateLimitedProvider) FetchHourly(ctx context.Context, latitude, longitude float64) (models.HourlySeries, error) {
	if err := r.forecastLimiter.Wait(ctx); err != nil {
		return models.HourlySeries{}, networkError("forecast", fmt.Errorf("rate limit wait canceled: %w", err))
	}
	return r.provider.FetchHourly(ctx, latitude, longitude)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

var _ Provider = (*RateLimitedProvider)(nil)
