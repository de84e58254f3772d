package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"weather-now/models"
)

// Searcher resolves one place name; *weather.Service implements it
type Searcher interface {
	Lookup(ctx context.Context, name string) (models.Report, error)
}

// Result is the outcome of one search
type Result struct {
	Name   string
	Report models.Report
	Err    error
}

// Collector runs independent searches for several place names at once
type Collector struct {
	searcher     Searcher
	fetchTimeout time.Duration
}

// NewCollector creates a collector around searcher
func NewCollector(searcher Searcher) *Collector {
	return &Collector{
		searcher:     searcher,
		fetchTimeout: 30 * time.Second, // Default timeout
	}
}

// SetFetchTimeout changes the timeout applied to each search
func (c *Collector) SetFetchTimeout(timeout time.Duration) {
	c.fetchTimeout = timeout
}

// Collect searches every name on its own goroutine and returns the results
// in the order of names
func (c *Collector) Collect(ctx context.Context, names []string) []Result {
	results := make([]Result, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = c.fetchOnce(ctx, name)
		}(i, name)
	}
	wg.Wait()

	return results
}

// fetchOnce performs a single search with its own timeout
func (c *Collector) fetchOnce(ctx context.Context, name string) Result {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	report, err := c.searcher.Lookup(fetchCtx, name)
	if err != nil {
		return Result{Name: name, Err: fmt.Errorf("error fetching weather for %q: %w", name, err)}
	}
	return Result{Name: name, Report: report}
}
