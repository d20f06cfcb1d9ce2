package models

const (
	ConditionRainy        = "rainy"
	ConditionCloudy       = "cloudy"
	ConditionHot          = "hot"
	ConditionCold         = "cold"
	ConditionClear        = "clear"
	ConditionPartlyCloudy = "partly_cloudy"
)

type ForecastDay struct {
	Day       string  `json:"day"`
	Temp      float64 `json:"temp"`
	Humidity  float64 `json:"humidity"`
	Rain      float64 `json:"rain"`
	Condition string  `json:"condition"`
}

// WeatherSample is a synthetic reading. Wind, pressure and the forecast
// beyond today are jittered on every call.
type WeatherSample struct {
	Location         string        `json:"location"`
	Temperature      float64       `json:"temperature"`
	Humidity         float64       `json:"humidity"`
	Rainfall         float64       `json:"rainfall"`
	WindSpeed        float64       `json:"wind_speed"`
	Pressure         float64       `json:"pressure"`
	WeatherCondition string        `json:"weather_condition"`
	Forecast         []ForecastDay `json:"forecast"`
}
