package weather

import (
	"context"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

// CannedProvider serves fixed conditions when no weather API key is
// configured or the live fetch fails, so the dashboard still renders.
type CannedProvider struct{}

func NewCannedProvider() *CannedProvider {
	return &CannedProvider{}
}

func (p *CannedProvider) Report(ctx context.Context, lat, lon float64) (*entity.WeatherReport, error) {
	return &entity.WeatherReport{
		Current: entity.CurrentWeather{
			TempC:     29,
			Condition: "Cloudy",
			Humidity:  78,
			WindKPH:   15,
			Location:  "Offline data",
		},
		Forecast: []entity.ForecastDay{
			{Day: "Tue", TempC: 30, Condition: "Partly Cloudy"},
			{Day: "Wed", TempC: 27, Condition: "Rain"},
			{Day: "Thu", TempC: 26, Condition: "Rain"},
			{Day: "Fri", TempC: 28, Condition: "Cloudy"},
			{Day: "Sat", TempC: 32, Condition: "Sunny"},
			{Day: "Sun", TempC: 33, Condition: "Sunny"},
			{Day: "Mon", TempC: 31, Condition: "Partly Cloudy"},
		},
	}, nil
}
