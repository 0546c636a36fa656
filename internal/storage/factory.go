package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/waifuisalie/ChallengeChain/internal/config"
	"github.com/waifuisalie/ChallengeChain/internal/database"
	"github.com/waifuisalie/ChallengeChain/internal/logger"
)

// New builds the store selected by cfg.StorageDriver. The returned close
// function releases any connection pool and is never nil.
func New(ctx context.Context, cfg *config.Config) (Storage, func(), error) {
	var (
		store   Storage
		closeFn = func() {}
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		store = NewMemStorage()
		logger.Info("Using in-memory storage")

	case config.StoragePostgres:
		dsn := cfg.PostgresDSN()
		if cfg.RunMigrations {
			if err := database.RunMigrations(dsn); err != nil {
				return nil, nil, err
			}
		}
		db, err := database.ConnectPostgres(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		store = NewPostgresStorage(db)
		closeFn = db.Close

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.SeedData {
		if err := Seed(ctx, store, time.Now()); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("failed to seed data: %w", err)
		}
	}

	return store, closeFn, nil
}
