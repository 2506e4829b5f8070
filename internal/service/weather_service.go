package service

import (
	"context"
	"strings"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
)

// WeatherProvider fetches raw conditions for a location.
type WeatherProvider interface {
	Report(ctx context.Context, lat, lon float64) (*entity.WeatherReport, error)
}

// WeatherService renders the farmer weather panel: live data when a
// provider is available, canned data otherwise, plus agronomic alerts
// derived from current conditions.
type WeatherService interface {
	Report(ctx context.Context) (*entity.WeatherReport, error)
}

type weatherService struct {
	live     WeatherProvider
	fallback WeatherProvider
	lat, lon float64
	log      logger.Logger
}

func NewWeatherService(live, fallback WeatherProvider, lat, lon float64, log logger.Logger) WeatherService {
	return &weatherService{
		live:     live,
		fallback: fallback,
		lat:      lat,
		lon:      lon,
		log:      log,
	}
}

func (s *weatherService) Report(ctx context.Context) (*entity.WeatherReport, error) {
	report, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	report.Alerts = deriveAlerts(report.Current)
	return report, nil
}

func (s *weatherService) fetch(ctx context.Context) (*entity.WeatherReport, error) {
	if s.live == nil {
		s.log.Debug("No weather API key configured, using offline data")
		return s.fallback.Report(ctx, s.lat, s.lon)
	}
	report, err := s.live.Report(ctx, s.lat, s.lon)
	if err != nil {
		s.log.Warnf("Live weather fetch failed, using offline data: %v", err)
		return s.fallback.Report(ctx, s.lat, s.lon)
	}
	return report, nil
}

// deriveAlerts applies the crop-risk rules: high humidity favors fungal
// diseases, heat stresses crops, rain calls for drainage checks.
func deriveAlerts(current entity.CurrentWeather) []entity.WeatherAlert {
	var alerts []entity.WeatherAlert
	if current.Humidity > 80 {
		alerts = append(alerts, entity.WeatherAlert{
			Title:   "High Humidity",
			Message: "Risk of fungal diseases. Monitor crops.",
		})
	}
	if current.TempC > 35 {
		alerts = append(alerts, entity.WeatherAlert{
			Title:   "High Heat",
			Message: "Ensure irrigation to prevent heat stress.",
		})
	}
	if strings.Contains(strings.ToLower(current.Condition), "rain") {
		alerts = append(alerts, entity.WeatherAlert{
			Title:   "Rain Alert",
			Message: "Heavy rain expected. Check drainage.",
		})
	}
	return alerts
}
