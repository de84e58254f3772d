package main

import (
	"bytes"
	"strings"
	"testing"

	"weather-now/collector"
	"weather-now/datasource"
	"weather-now/models"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	render(&buf, collector.Result{
		Name: "berlin",
		Report: models.Report{
			Location: models.Location{Name: "Berlin", Country: "Germany"},
			Time:     "2024-01-01T01:00",
			Snapshot: models.Snapshot{Temperature: 7.2, WeatherCondition: models.ConditionRain, Humidity: 90, WindSpeed: 10},
		},
	})

	out := buf.String()
	for _, want := range []string{
		"Berlin,Germany (berlin) at 2024-01-01T01:00",
		"7.2 C",
		"Rain [rain.png]",
		"Humidity 90%",
		"Windspeed 10.0km/h",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestRenderUnknownAndError(t *testing.T) {
	var buf bytes.Buffer
	render(&buf, collector.Result{
		Name:   "fog town",
		Report: models.Report{Location: models.Location{Name: "Fog Town"}, Snapshot: models.Snapshot{WeatherCondition: models.ConditionUnknown}},
	})
	if !strings.Contains(buf.String(), "  Unknown\n") || strings.Contains(buf.String(), ".png") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	render(&buf, collector.Result{Name: "Atlantis", Err: datasource.NotFound("Atlantis")})
	if !strings.Contains(buf.String(), "Atlantis: geocode: location_not_found") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
