package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/manikandan032/plant-disease-detection/internal/app/config"
	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherClient fetches current conditions and the 5-day forecast from
// OpenWeatherMap in metric units.
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

func NewOpenWeatherClient(cfg config.WeatherConfig, log logger.Logger) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:     cfg.APIKey,
		baseURL:    openWeatherBaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
		DtTxt string `json:"dt_txt"`
	} `json:"list"`
}

func (c *OpenWeatherClient) fetch(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build weather request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather api returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode weather response: %w", err)
	}
	return nil
}

// Report returns current conditions plus one forecast entry per day (the
// midday sample of the 3-hourly forecast, as the dashboard shows it).
func (c *OpenWeatherClient) Report(ctx context.Context, lat, lon float64) (*entity.WeatherReport, error) {
	var current currentResponse
	path := fmt.Sprintf("/weather?lat=%f&lon=%f&units=metric&appid=%s", lat, lon, c.apiKey)
	if err := c.fetch(ctx, path, &current); err != nil {
		return nil, err
	}

	var forecast forecastResponse
	path = fmt.Sprintf("/forecast?lat=%f&lon=%f&units=metric&appid=%s", lat, lon, c.apiKey)
	if err := c.fetch(ctx, path, &forecast); err != nil {
		return nil, err
	}

	report := &entity.WeatherReport{
		Current: entity.CurrentWeather{
			TempC:    current.Main.Temp,
			Humidity: current.Main.Humidity,
			WindKPH:  current.Wind.Speed * 3.6, // m/s to km/h
			Location: current.Name,
		},
	}
	if len(current.Weather) > 0 {
		report.Current.Condition = current.Weather[0].Description
	}

	for _, slot := range forecast.List {
		if len(slot.Weather) == 0 {
			continue
		}
		t := time.Unix(slot.Dt, 0).UTC()
		if t.Hour() != 12 {
			continue
		}
		report.Forecast = append(report.Forecast, entity.ForecastDay{
			Day:       t.Weekday().String()[:3],
			TempC:     slot.Main.Temp,
			Condition: slot.Weather[0].Main,
		})
	}
	return report, nil
}
