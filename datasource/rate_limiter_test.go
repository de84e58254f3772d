package datasource

import (
	"context"
	"sync/atomic"
	"testing"

	"weather-now/models"
)

type countingProvider struct {
	geocodes  atomic.Int32
	forecasts atomic.Int32
}

func (c *countingProvider) Name() string { return "Counting" }

func (c *countingProvider) Geocode(ctx context.Context, name string) ([]models.Location, error) {
	c.geocodes.Add(1)
	return []models.Location{{Name: name}}, nil
}

func (c *countingProvider) FetchHourly(ctx context.Context, latitude, longitude float64) (models.HourlySeries, error) {
	c.forecasts.Add(1)
	return models.HourlySeries{}, nil
}

func TestRateLimitedProviderForwards(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, 100, 2)

	if p.Name() != "Counting [Rate Limited]" {
		t.Errorf("Name = %q", p.Name())
	}
	if _, err := p.Geocode(context.Background(), "Oslo"); err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if _, err := p.FetchHourly(context.Background(), 1, 2); err != nil {
		t.Fatalf("FetchHourly: %v", err)
	}
	if inner.geocodes.Load() != 1 || inner.forecasts.Load() != 1 {
		t.Fatalf("calls = %d/%d, want 1/1", inner.geocodes.Load(), inner.forecasts.Load())
	}
}

func TestRateLimitedProviderCanceled(t *testing.T) {
	inner := &countingProvider{}
	// one token per hour, burst 1: the second call has to wait
	p := NewRateLimitedProvider(inner, 1.0/3600, 1)

	if _, err := p.Geocode(context.Background(), "Oslo"); err != nil {
		t.Fatalf("first Geocode: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Geocode(ctx, "Oslo")
	if KindOf(err) != KindNetwork {
		t.Fatalf("kind = %v, want network (err: %v)", KindOf(err), err)
	}
	if inner.geocodes.Load() != 1 {
		t.Fatalf("limited call reached the provider")
	}

	// the forecast endpoint has its own budget
	if _, err := p.FetchHourly(context.Background(), 1, 2); err != nil {
		t.Fatalf("FetchHourly: %v", err)
	}
}
