package models

// Forecast is a daily weather forecast for a trip location.
type Forecast struct {
	Date        string  `bson:"date" json:"date"`
	MinTemp     float64 `bson:"min_temp" json:"minTemp"`
	MaxTemp     float64 `bson:"max_temp" json:"maxTemp"`
	WeatherCode int     `bson:"weather_code" json:"weatherCode"`
}

// WeatherCondition is the human-facing bucket a WMO weather code maps to.
type WeatherCondition string

const (
	ConditionClear        WeatherCondition = "clear"
	ConditionCloudy       WeatherCondition = "cloudy"
	ConditionFog          WeatherCondition = "fog"
	ConditionRain         WeatherCondition = "rain"
	ConditionSnow         WeatherCondition = "snow"
	ConditionShowers      WeatherCondition = "showers"
	ConditionThunderstorm WeatherCondition = "thunderstorm"
)

// CalendarDay is one cell of an annotated booking calendar.
type CalendarDay struct {
	Date      string    `json:"date"`
	InMonth   bool      `json:"inMonth"`
	Bookable  bool      `json:"bookable"`
	Forecast  *Forecast `json:"forecast,omitempty"`
	Condition string    `json:"condition,omitempty"`
	// FetchError is set when the forecast lookup for this day failed, as
	// opposed to the upstream having no data for it.
	FetchError string `json:"fetchError,omitempty"`
}
