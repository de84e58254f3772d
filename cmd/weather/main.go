package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"weather-now/collector"
	"weather-now/config"
	"weather-now/models"
	"weather-now/weather"
)

func main() {
	fs := flag.NewFlagSet("weather", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: weather [flags] LOCATION [LOCATION...]\n")
		fs.PrintDefaults()
	}

	cfg, err := config.Load(fs, os.Args[1:], ".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	provider := cfg.Provider()
	c := collector.NewCollector(weather.NewService(provider, provider))
	c.SetFetchTimeout(cfg.SearchTimeout)

	failed := false
	for _, result := range c.Collect(context.Background(), fs.Args()) {
		if result.Err != nil {
			failed = true
		}
		render(os.Stdout, result)
	}
	if failed {
		os.Exit(1)
	}
}

// render prints one search result the way the desktop window laid it out
func render(w io.Writer, result collector.Result) {
	if result.Err != nil {
		fmt.Fprintf(w, "%s: %v\n\n", result.Name, result.Err)
		return
	}

	r := result.Report
	fmt.Fprintf(w, "%s (%s) at %s\n", displayName(r.Location), result.Name, r.Time)
	fmt.Fprintf(w, "  %.1f C\n", r.Snapshot.Temperature)
	condition := string(r.Snapshot.WeatherCondition)
	if condition == "" {
		condition = "Unknown"
	}
	if icon := r.Snapshot.WeatherCondition.Icon(); icon != "" {
		fmt.Fprintf(w, "  %s [%s]\n", condition, icon)
	} else {
		fmt.Fprintf(w, "  %s\n", condition)
	}
	fmt.Fprintf(w, "  Humidity %d%%\n", r.Snapshot.Humidity)
	fmt.Fprintf(w, "  Windspeed %.1fkm/h\n\n", r.Snapshot.WindSpeed)
}

func displayName(l models.Location) string {
	if l.Country == "" {
		return l.Name
	}
	return fmt.Sprintf("%s,%s", l.Name, l.Country)
}
