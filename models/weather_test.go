package models

import (
	"encoding/json"
	"testing"
)

func TestConditionIcon(t *testing.T) {
	tests := map[Condition]string{
		ConditionClear:   "clear.png",
		ConditionCloudy:  "cloudy.png",
		ConditionRain:    "rain.png",
		ConditionSnow:    "snow.png",
		ConditionUnknown: "",
	}
	for c, want := range tests {
		if got := c.Icon(); got != want {
			t.Errorf("%q.Icon() = %q, want %q", c, got, want)
		}
	}
}

func TestSnapshotFieldNames(t *testing.T) {
	b, err := json.Marshal(Snapshot{Temperature: 7.2, WeatherCondition: ConditionRain, Humidity: 90, WindSpeed: 10})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"temperature":7.2,"weather_condition":"Rain","humidity":90,"windspeed":10}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}
