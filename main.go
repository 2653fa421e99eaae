package main

import (
	"context"
	"log"

	"fleet-booking/cmd"
	"fleet-booking/internal/data/repository"
	"fleet-booking/internal/data/repository/memstore"
	"fleet-booking/internal/wire"
	"fleet-booking/pkg/database"
	"fleet-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	var repos *repository.Repository
	switch config.Database.Driver {
	case utils.DriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		repos = memstore.NewRepository()

	case utils.DriverMongo:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close(context.Background())

		logger.Info("Database connected successfully", zap.String("database", config.Database.Name))

		indexCtx, cancel := context.WithTimeout(context.Background(), config.Database.Timeout)
		err = repository.EnsureIndexes(indexCtx, db.Database())
		cancel()
		if err != nil {
			logger.Fatal("Failed to create indexes", zap.Error(err))
		}

		repos = repository.NewRepository(db.Database(), logger)

	default:
		logger.Fatal("Unknown database driver", zap.String("driver", config.Database.Driver))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
