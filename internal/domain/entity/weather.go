package entity

// CurrentWeather is the current conditions panel of the farmer dashboard.
type CurrentWeather struct {
	TempC     float64 `json:"temp"`
	Condition string  `json:"condition"`
	Humidity  int     `json:"humidity"`
	WindKPH   float64 `json:"wind_speed"`
	Location  string  `json:"location"`
}

type ForecastDay struct {
	Day       string  `json:"day"`
	TempC     float64 `json:"temp"`
	Condition string  `json:"condition"`
}

// WeatherAlert is an agronomic warning derived from current conditions.
type WeatherAlert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type WeatherReport struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Alerts   []WeatherAlert `json:"alerts"`
}
