package weather

import (
	"fmt"
	"strings"
	"time"

	"weather-now/models"
)

// CurrentHour formats t the way the forecast API labels hourly rows,
// e.g. 2024-09-02T13:00
func CurrentHour(t time.Time) string {
	return t.Format("2006-01-02T15") + ":00"
}

// FindHourIndex returns the position of hour in times, compared case-insensitively.
// When no entry matches it falls back to 0, the earliest hour in the series.
func FindHourIndex(times []string, hour string) (int, bool) {
	for i, t := range times {
		if strings.EqualFold(t, hour) {
			return i, true
		}
	}
	return 0, false
}

// Classify maps a WMO weather code to its coarse condition
func Classify(code int) models.Condition {
	switch {
	case code == 0:
		return models.ConditionClear
	case code >= 1 && code <= 3:
		return models.ConditionCloudy
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 99):
		return models.ConditionRain
	case code >= 71 && code <= 77:
		return models.ConditionSnow
	}
	return models.ConditionUnknown
}

// SnapshotAt reads row i from every sequence of the series. A sequence that is
// too short or holds null at i makes the whole row unusable.
func SnapshotAt(series models.HourlySeries, i int) (models.Snapshot, error) {
	if i < 0 {
		return models.Snapshot{}, fmt.Errorf("negative hour index %d", i)
	}

	temperature, err := valueAt(series.Temperature2m, i, "temperature_2m")
	if err != nil {
		return models.Snapshot{}, err
	}
	humidity, err := valueAt(series.RelativeHumidity2m, i, "relative_humidity_2m")
	if err != nil {
		return models.Snapshot{}, err
	}
	code, err := valueAt(series.WeatherCode, i, "weather_code")
	if err != nil {
		return models.Snapshot{}, err
	}
	wind, err := valueAt(series.WindSpeed10m, i, "wind_speed_10m")
	if err != nil {
		return models.Snapshot{}, err
	}

	return models.Snapshot{
		Temperature:      temperature,
		WeatherCondition: Classify(code),
		Humidity:         humidity,
		WindSpeed:        wind,
	}, nil
}

func valueAt[T any](values []*T, i int, field string) (T, error) {
	var zero T
	if i >= len(values) {
		return zero, fmt.Errorf("hourly.%s has %d entries, need index %d", field, len(values), i)
	}
	if values[i] == nil {
		return zero, fmt.Errorf("hourly.%s[%d] is null", field, i)
	}
	return *values[i], nil
}
