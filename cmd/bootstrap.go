package cmd

import (
	"context"
	"fmt"
	"log"

	"campus-parking/internal/data/repository"
	"campus-parking/internal/data/repository/memory"
	"campus-parking/pkg/database"
	"campus-parking/pkg/utils"

	"go.uber.org/zap"
)

// bootstrap bundles what every subcommand needs after start-up.
type bootstrap struct {
	config *utils.Config
	log    *zap.Logger
}

func loadRuntime(configPath string) (*bootstrap, error) {
	// Load config
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}

	return &bootstrap{config: config, log: logger}, nil
}

// openPostgres connects to the configured database.
func (rt *bootstrap) openPostgres(ctx context.Context) (database.PgxIface, error) {
	db, err := database.InitDB(ctx, rt.config.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	rt.log.Info("Database connected successfully",
		zap.String("host", rt.config.Database.Host),
		zap.String("database", rt.config.Database.Name),
	)
	return db, nil
}

// openRepository returns the store selected by STORAGE_DRIVER. db is nil for the memory driver.
func (rt *bootstrap) openRepository(ctx context.Context) (*repository.Repository, database.PgxIface, error) {
	switch rt.config.App.StorageDriver {
	case utils.StorageDriverMemory:
		rt.log.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewRepository(memory.NewStore(rt.log)), nil, nil

	default:
		db, err := rt.openPostgres(ctx)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRepository(db, rt.log), db, nil
	}
}
