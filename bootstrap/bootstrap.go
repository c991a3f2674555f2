// Package bootstrap loads the dataset and model artifacts the dashboard
// serves from.
package bootstrap

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"digikala-dashboard/config"
	"digikala-dashboard/database"
	"digikala-dashboard/dataset"
	"digikala-dashboard/models"
	"digikala-dashboard/predictor"
)

// State is everything loaded at startup.
type State struct {
	Data      *dataset.Dataset
	Artifacts *predictor.Artifacts
}

// Load reads the dataset and all artifacts. If any step fails the error is
// returned together with a degraded state: an empty dataset and no
// artifacts, so the dashboard still serves with prediction disabled.
func Load(ctx context.Context, cfg *config.Config, client *http.Client) (*State, error) {
	rows, err := loadRows(ctx, cfg, client)
	if err != nil {
		return degraded(), err
	}

	artifacts, err := predictor.LoadArtifacts(predictor.Paths{
		Model:    cfg.ModelPath,
		Scaler:   cfg.ScalerPath,
		Columns:  cfg.ColumnsPath,
		Defaults: cfg.DefaultsPath,
	})
	if err != nil {
		return degraded(), err
	}

	return &State{Data: dataset.New(rows), Artifacts: artifacts}, nil
}

func loadRows(ctx context.Context, cfg *config.Config, client *http.Client) ([]models.ListingPrice, error) {
	if cfg.DBDSN != "" {
		db, err := database.Connect(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		return database.LoadListingPrices(db, cfg.DBTable)
	}

	if _, err := dataset.EnsureFile(ctx, client, cfg.DatasetPath, cfg.DatasetURL); err != nil {
		return nil, err
	}
	rows, err := dataset.LoadCSV(cfg.DatasetPath, cfg.Columns)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", cfg.DatasetPath).Int("rows", len(rows)).Msg("✅ Dataset loaded")
	return rows, nil
}

func degraded() *State {
	return &State{Data: dataset.Empty()}
}
