package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"digikala-dashboard/bootstrap"
	"digikala-dashboard/charts"
	"digikala-dashboard/config"
	"digikala-dashboard/controllers"
	"digikala-dashboard/predictor"
	"digikala-dashboard/routes"
)

// The first run downloads the dataset, which can be large.
const downloadTimeout = 10 * time.Minute

func initLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	cfg := config.Load()
	initLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	state, err := bootstrap.Load(ctx, cfg, &http.Client{})
	cancel()
	if err != nil {
		// Keep serving: the charts stay empty and predictions report the model as unavailable.
		log.Error().Err(err).Msg("❌ Failed to load dashboard files")
	} else {
		log.Info().Int("rows", state.Data.Len()).Msg("✅ All required files loaded successfully")
	}

	service := predictor.NewService(state.Artifacts, cfg.Columns)
	dashboard := controllers.NewDashboard(state.Data, service, charts.NewCache(state.Data, service))

	app := routes.NewApp(dashboard, cfg.AllowOrigins)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Server running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
