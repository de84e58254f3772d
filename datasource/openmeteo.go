package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-now/models"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com"
	DefaultForecastURL  = "https://api.open-meteo.com"

	// geocodeCount caps the number of candidates the geocoder returns
	geocodeCount = 10

	hourlyVariables = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"
)

// OpenMeteoProvider implements both Geocoder and ForecastSource interfaces
type OpenMeteoProvider struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
}

// Option customizes an OpenMeteoProvider
type Option func(*OpenMeteoProvider)

// WithBaseURLs points the provider at other hosts, e.g. an httptest server
func WithBaseURLs(geocodingURL, forecastURL string) Option {
	return func(p *OpenMeteoProvider) {
		if geocodingURL != "" {
			p.geocodingURL = geocodingURL
		}
		if forecastURL != "" {
			p.forecastURL = forecastURL
		}
	}
}

// WithHTTPClient replaces the default client
func WithHTTPClient(c *http.Client) Option {
	return func(p *OpenMeteoProvider) {
		p.httpClient = c
	}
}

// NewOpenMeteoProvider creates a new Open-Meteo provider
func NewOpenMeteoProvider(opts ...Option) *OpenMeteoProvider {
	p := &OpenMeteoProvider{
		geocodingURL: DefaultGeocodingURL,
		forecastURL:  DefaultForecastURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider name
func (p *OpenMeteoProvider) Name() string {
	return "Open-Meteo"
}

// Geocode searches for locations matching name. The caller trims the name;
// spaces are encoded as '+' by the query encoder.
func (p *OpenMeteoProvider) Geocode(ctx context.Context, name string) ([]models.Location, error) {
	const op = "geocode"

	params := url.Values{}
	params.Add("name", name)
	params.Add("count", strconv.Itoa(geocodeCount))
	params.Add("language", "en")
	params.Add("format", "json")

	body, err := p.get(ctx, op, p.geocodingURL+"/v1/search?"+params.Encode())
	if err != nil {
		return nil, err
	}

	// Open-Meteo omits "results" entirely when nothing matched
	var response struct {
		Results []struct {
			Name      string   `json:"name"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
			Country   string   `json:"country"`
			Timezone  string   `json:"timezone"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, parseError(op, fmt.Errorf("failed to parse response: %w", err))
	}

	locations := make([]models.Location, 0, len(response.Results))
	for i, r := range response.Results {
		if r.Latitude == nil || r.Longitude == nil {
			return nil, parseError(op, fmt.Errorf("result %d has no coordinates", i))
		}
		locations = append(locations, models.Location{
			Name:      r.Name,
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
			Country:   r.Country,
			Timezone:  r.Timezone,
		})
	}

	return locations, nil
}

// FetchHourly fetches the hourly series for a coordinate
func (p *OpenMeteoProvider) FetchHourly(ctx context.Context, latitude, longitude float64) (models.HourlySeries, error) {
	const op = "forecast"

	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Add("hourly", hourlyVariables)

	body, err := p.get(ctx, op, p.forecastURL+"/v1/forecast?"+params.Encode())
	if err != nil {
		return models.HourlySeries{}, err
	}

	var response struct {
		Hourly *models.HourlySeries `json:"hourly"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return models.HourlySeries{}, parseError(op, fmt.Errorf("failed to parse response: %w", err))
	}
	if response.Hourly == nil {
		return models.HourlySeries{}, parseError(op, errors.New("missing hourly"))
	}

	h := response.Hourly
	switch {
	case h.Time == nil:
		return models.HourlySeries{}, parseError(op, errors.New("missing hourly.time"))
	case h.Temperature2m == nil:
		return models.HourlySeries{}, parseError(op, errors.New("missing hourly.temperature_2m"))
	case h.RelativeHumidity2m == nil:
		return models.HourlySeries{}, parseError(op, errors.New("missing hourly.relative_humidity_2m"))
	case h.WeatherCode == nil:
		return models.HourlySeries{}, parseError(op, errors.New("missing hourly.weather_code"))
	case h.WindSpeed10m == nil:
		return models.HourlySeries{}, parseError(op, errors.New("missing hourly.wind_speed_10m"))
	}

	return *h, nil
}

// get performs a GET and returns the body of a 200 response
func (p *OpenMeteoProvider) get(ctx context.Context, op, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, networkError(op, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, networkError(op, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(op, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(op, resp.StatusCode, body)
	}

	return body, nil
}

var (
	_ Geocoder       = (*OpenMeteoProvider)(nil)
	_ ForecastSource = (*OpenMeteoProvider)(nil)
)
