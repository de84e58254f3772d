package models

// Condition is the coarse weather category derived from a WMO weather code.
// The zero value means the code fell outside every known bucket.
type Condition string

const (
	ConditionUnknown Condition = ""
	ConditionClear   Condition = "Clear"
	ConditionCloudy  Condition = "Cloudy"
	ConditionRain    Condition = "Rain"
	ConditionSnow    Condition = "Snow"
)

// Icon returns the asset name shown next to the condition, or "" for unknown codes
func (c Condition) Icon() string {
	switch c {
	case ConditionClear:
		return "clear.png"
	case ConditionCloudy:
		return "cloudy.png"
	case ConditionRain:
		return "rain.png"
	case ConditionSnow:
		return "snow.png"
	}
	return ""
}

// Snapshot is the weather for the current local hour at one location
type Snapshot struct {
	Temperature      float64   `json:"temperature"`       // in Celsius
	WeatherCondition Condition `json:"weather_condition"` // classified weather code
	Humidity         int       `json:"humidity"`          // percentage
	WindSpeed        float64   `json:"windspeed"`         // in km/h
}

// Report wraps a snapshot with the location it was resolved for and the
// series timestamp it was read from
type Report struct {
	Location Location `json:"location"`
	Time     string   `json:"time"`
	Snapshot Snapshot `json:"snapshot"`
}
