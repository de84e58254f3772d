package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"weather-now/datasource"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
)

// EnvPrefix is prepended to every flag name when read from the environment,
// e.g. -rate-limit becomes WEATHER_RATE_LIMIT
const EnvPrefix = "WEATHER"

// Config represents the application configuration
type Config struct {
	Port          int
	GeocodingURL  string
	ForecastURL   string
	HTTPTimeout   time.Duration
	SearchTimeout time.Duration

	RateLimiting bool
	RateLimit    float64
	RateBurst    int
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Port:          8080,
		GeocodingURL:  datasource.DefaultGeocodingURL,
		ForecastURL:   datasource.DefaultForecastURL,
		HTTPTimeout:   10 * time.Second,
		SearchTimeout: 30 * time.Second,
		RateLimiting:  true,
		RateLimit:     1.0,
		RateBurst:     5,
	}
}

// RegisterFlags binds every field to a flag on fs, using c's current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Port, "port", c.Port, "Port to run the server on")
	fs.StringVar(&c.GeocodingURL, "geocoding-url", c.GeocodingURL, "Base URL of the geocoding API")
	fs.StringVar(&c.ForecastURL, "forecast-url", c.ForecastURL, "Base URL of the forecast API")
	fs.DurationVar(&c.HTTPTimeout, "http-timeout", c.HTTPTimeout, "Timeout for a single upstream request")
	fs.DurationVar(&c.SearchTimeout, "search-timeout", c.SearchTimeout, "Timeout for a whole search (geocode + forecast)")
	fs.BoolVar(&c.RateLimiting, "rate-limiting", c.RateLimiting, "Enable upstream rate limiting")
	fs.Float64Var(&c.RateLimit, "rate-limit", c.RateLimit, "Upstream requests per second, per endpoint")
	fs.IntVar(&c.RateBurst, "rate-burst", c.RateBurst, "Upstream request burst size")
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.GeocodingURL == "" || c.ForecastURL == "" {
		return errors.New("geocoding and forecast URLs are required")
	}
	if c.HTTPTimeout <= 0 || c.SearchTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.RateLimiting && (c.RateLimit <= 0 || c.RateBurst <= 0) {
		return fmt.Errorf("invalid rate limit %v/s burst %d", c.RateLimit, c.RateBurst)
	}
	return nil
}

// Provider builds the upstream client described by c
func (c *Config) Provider() datasource.Provider {
	var p datasource.Provider = datasource.NewOpenMeteoProvider(
		datasource.WithBaseURLs(c.GeocodingURL, c.ForecastURL),
		datasource.WithHTTPClient(&http.Client{Timeout: c.HTTPTimeout}),
	)
	if c.RateLimiting {
		p = datasource.NewRateLimitedProvider(p, c.RateLimit, c.RateBurst)
	}
	return p
}

// Load reads an optional .env file, then parses args with environment fallback.
// Flags registered on flags before the call are parsed too.
func Load(flags *flag.FlagSet, args []string, dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: Error loading %s file: %v", dotenv, err)
		}
	}

	c := DefaultConfig()
	c.RegisterFlags(flags)
	if err := ff.Parse(flags, args, ff.WithEnvVarPrefix(EnvPrefix)); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
