package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://127.0.0.1:8000/api"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"15s"`
}

// StateConfig points at the directory holding the persisted session and cart.
// State is per-machine, best effort: a missing or corrupted file degrades to
// "logged out" / "empty cart".
type StateConfig struct {
	Dir string `yaml:"dir" env:"STATE_DIR" env-default:".plantshield"`
}

type WeatherConfig struct {
	APIKey  string        `yaml:"api_key" env:"WEATHER_API_KEY"`
	Lat     float64       `yaml:"lat" env:"WEATHER_LAT" env-default:"11.0168"`
	Lon     float64       `yaml:"lon" env:"WEATHER_LON" env-default:"76.9558"`
	Timeout time.Duration `yaml:"timeout" env:"WEATHER_TIMEOUT" env-default:"10s"`
}

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"console"`
	TimeFormat string `yaml:"time_format" env:"LOG_TIME_FORMAT" env-default:"2006-01-02T15:04:05.000Z07:00"`
}

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	API     APIConfig     `yaml:"api"`
	State   StateConfig   `yaml:"state"`
	Weather WeatherConfig `yaml:"weather"`
	Logger  LoggerConfig  `yaml:"logger"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		err := cleanenv.ReadEnv(&cfg)
		if err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		if _, ok := err.(*os.PathError); ok && path != "" {
			log.Printf("Warning: Config file not found at %s, attempting to load from environment variables only.", path)
			errEnv := cleanenv.ReadEnv(&cfg)
			if errEnv != nil {
				return nil, errEnv
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}
