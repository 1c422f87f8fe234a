package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/vanshajvr/FinTrack/internal/config"
	"github.com/vanshajvr/FinTrack/internal/logging"
	"github.com/vanshajvr/FinTrack/internal/storage"
	"github.com/vanshajvr/FinTrack/models"
)

func initDB(cfg config.Config, log zerolog.Logger) (*storage.Store, error) {
	dialector, err := storage.Dialector(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(dialector, storage.Options{
		Logger:          logging.GORM(log),
		DefaultCurrency: cfg.DefaultCurrency,
		MaxOpenConns:    10,
	})
	if err != nil {
		return nil, err
	}

	if cfg.SeedDev {
		if err := seedDevData(context.Background(), store); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		log.Info().Msg("dev seed data checked")
	}
	return store, nil
}

// seedDevData fills an empty store with a month of sample activity. A store
// that already has rows is left alone.
func seedDevData(ctx context.Context, store *storage.Store) error {
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	samples := []models.NewTransaction{
		{Amount: decimal.NewFromInt(52000), Type: models.Income, Category: "Salary", Notes: "monthly pay"},
		{Amount: decimal.NewFromInt(15000), Type: models.Expense, Category: "Bills", Notes: "rent"},
		{Amount: decimal.RequireFromString("2350.75"), Type: models.Expense, Category: "Food"},
		{Amount: decimal.NewFromInt(640), Type: models.Expense, Category: "Transport"},
		{Amount: decimal.RequireFromString("1899.99"), Type: models.Expense, Category: "Shopping"},
		{Amount: decimal.NewFromInt(3000), Type: models.Income, Category: "Other", Notes: "freelance"},
	}
	for _, in := range samples {
		if _, err := store.AddTransaction(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
