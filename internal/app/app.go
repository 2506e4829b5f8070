package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/manikandan032/plant-disease-detection/internal/adapter/api"
	"github.com/manikandan032/plant-disease-detection/internal/adapter/localstore"
	"github.com/manikandan032/plant-disease-detection/internal/adapter/weather"
	"github.com/manikandan032/plant-disease-detection/internal/app/config"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
	"github.com/manikandan032/plant-disease-detection/internal/port/cli"
	"github.com/manikandan032/plant-disease-detection/internal/service"
)

type App struct {
	cfg       *config.Config
	log       logger.Logger
	navigator *cli.Navigator
}

func New(cfg *config.Config) (*App, error) {
	log, err := logger.NewZapLogger(logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := localstore.NewStore(cfg.State.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open state directory: %w", err)
	}
	cartRepo := localstore.NewCartRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)

	client := api.NewClient(cfg.API, log)

	// AuthService registers itself as the client's token provider and 401
	// handler, so every authenticated call carries the bearer token and an
	// expired session forces a logout.
	authService := service.NewAuthService(sessionRepo, client, log)

	var live service.WeatherProvider
	if cfg.Weather.APIKey != "" {
		live = weather.NewOpenWeatherClient(cfg.Weather, log)
	}

	svcs := cli.Services{
		Auth:      authService,
		Carts:     service.NewCartService(cartRepo, log),
		Checkout:  service.NewCheckoutService(cartRepo, authService, client, log),
		Orders:    service.NewOrderService(client, log),
		Shop:      service.NewShopService(client, log),
		Detection: service.NewDetectionService(client, log),
		Profile:   service.NewProfileService(client, log),
		Admin:     service.NewAdminService(client, log),
		Weather:   service.NewWeatherService(live, weather.NewCannedProvider(), cfg.Weather.Lat, cfg.Weather.Lon, log),
	}

	return &App{
		cfg:       cfg,
		log:       log,
		navigator: cli.NewNavigator(svcs, os.Stdin, os.Stdout, log),
	}, nil
}

func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.Infof("PlantShield client started (env=%s, api=%s)", a.cfg.Env, a.cfg.API.BaseURL)
	if err := a.navigator.Run(ctx); err != nil {
		a.log.Errorf("Client exited with error: %v", err)
		return
	}
	a.log.Info("Goodbye")
}
