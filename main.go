// main.go
package main

import (
	"context"
	"log"

	"film-recommendations/cmd"
	"film-recommendations/internal/data/client"
	"film-recommendations/internal/data/repository"
	"film-recommendations/internal/wire"
	"film-recommendations/pkg/database"
	"film-recommendations/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("db_driver", config.Database.Driver),
	)

	ctx := context.Background()

	// Connect to the catalog
	var repos *repository.Repository
	switch config.Database.Driver {
	case "postgres":
		db, err := database.InitPostgres(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		repos = repository.NewRepository(db, logger)
	default:
		db, err := database.InitSQLite(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to open database", zap.Error(err), zap.String("path", config.Database.Path))
		}
		defer db.Close()
		repos = repository.NewSQLiteRepository(db, logger)
	}

	logger.Info("Database connected successfully")

	reviews, err := client.NewReviewClient(config.Reviews, logger)
	if err != nil {
		logger.Fatal("Failed to create review client", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, reviews, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
