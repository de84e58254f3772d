package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"weather-now/datasource"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != 8080 || c.GeocodingURL != datasource.DefaultGeocodingURL || c.ForecastURL != datasource.DefaultForecastURL {
		t.Errorf("unexpected defaults %+v", c)
	}
	if !c.RateLimiting || c.RateLimit != 1.0 || c.RateBurst != 5 {
		t.Errorf("unexpected rate limit defaults %+v", c)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WEATHER_PORT", "9000")
	t.Setenv("WEATHER_HTTP_TIMEOUT", "3s")

	c, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-port", "9100"}, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != 9100 {
		t.Errorf("Port = %d, want flag value 9100", c.Port)
	}
	if c.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v, want env value 3s", c.HTTPTimeout)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("WEATHER_FORECAST_URL=http://localhost:9999\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WEATHER_FORECAST_URL", "")
	os.Unsetenv("WEATHER_FORECAST_URL")

	c, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ForecastURL != "http://localhost:9999" {
		t.Errorf("ForecastURL = %q", c.ForecastURL)
	}
}

func TestLoadMissingDotEnv(t *testing.T) {
	if _, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil, filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing .env should not fail: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"port":    func(c *Config) { c.Port = 0 },
		"url":     func(c *Config) { c.GeocodingURL = "" },
		"timeout": func(c *Config) { c.SearchTimeout = 0 },
		"rate":    func(c *Config) { c.RateLimit = 0 },
	}
	for name, mutate := range tests {
		c := DefaultConfig()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}

	c := DefaultConfig()
	c.RateLimiting = false
	c.RateLimit = 0
	if err := c.Validate(); err != nil {
		t.Errorf("rate limit values ignored when disabled: %v", err)
	}
}

func TestProviderWrapsRateLimiter(t *testing.T) {
	c := DefaultConfig()
	if got := c.Provider().Name(); got != "Open-Meteo [Rate Limited]" {
		t.Errorf("Name = %q", got)
	}
	c.RateLimiting = false
	if got := c.Provider().Name(); got != "Open-Meteo" {
		t.Errorf("Name = %q", got)
	}
}
