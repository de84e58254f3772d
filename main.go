package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-now/api"
	"weather-now/config"
	"weather-now/weather"
)

func main() {
	// Load configuration from .env, environment and flags
	fs := flag.NewFlagSet("weather-now", flag.ExitOnError)
	cfg, err := config.Load(fs, os.Args[1:], ".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	provider := cfg.Provider()
	log.Printf("Using provider %s (geocoding %s, forecast %s)", provider.Name(), cfg.GeocodingURL, cfg.ForecastURL)

	service := weather.NewService(provider, provider)
	server := api.NewServer(service, api.NewReportStore(), api.NewMetrics(), cfg.Port, cfg.SearchTimeout)

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdownChan
	log.Printf("Shutting down due to %s signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Shutdown complete")
}
