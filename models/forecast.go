package models

// Location is a geocoding candidate
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	Timezone  string  `json:"timezone,omitempty"`
}

// HourlySeries holds parallel per-hour sequences; index i in every slice
// describes the hour Time[i] (formatted YYYY-MM-DDTHH:00).
//
// Nil entries mark hours the upstream reported as null.
type HourlySeries struct {
	Time               []string   `json:"time"`
	Temperature2m      []*float64 `json:"temperature_2m"`
	RelativeHumidity2m []*int     `json:"relative_humidity_2m"`
	WeatherCode        []*int     `json:"weather_code"`
	WindSpeed10m       []*float64 `json:"wind_speed_10m"`
}
