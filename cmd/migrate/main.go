package main

import (
	"fmt"

	"snapfeed/internal/server/repo/persistent"
	"snapfeed/pkg/config"
	"snapfeed/pkg/database"
	"snapfeed/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if _, err := persistent.New(db); err != nil {
		log.Error("Failed to run migrations: %v", err)
		panic(err)
	}

	log.Info("Migrations applied to %s/%s", cfg.DBHost, cfg.DBName)
}
