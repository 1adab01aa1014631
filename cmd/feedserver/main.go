package main

import (
	"fmt"

	"snapfeed/internal/server/app"
	"snapfeed/internal/server/repo"
	"snapfeed/internal/server/repo/memory"
	"snapfeed/internal/server/repo/persistent"
	"snapfeed/pkg/cache"
	"snapfeed/pkg/config"
	"snapfeed/pkg/database"
	"snapfeed/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	var storage repo.Storage
	switch cfg.StorageBackend {
	case "postgres":
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Error("Failed to connect to database: %v", err)
			panic(err)
		}
		storage, err = persistent.New(db)
		if err != nil {
			log.Error("Failed to migrate database: %v", err)
			panic(err)
		}
		log.Info("Using postgres storage (%s/%s)", cfg.DBHost, cfg.DBName)
	default:
		storage = memory.New()
		log.Info("Using in-memory storage")
	}

	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v", err)
			panic(err)
		}
		log.Info("Rate limiting enabled via redis at %s:%s", cfg.RedisHost, cfg.RedisPort)
	}

	app.Run(cfg, log, storage, redisClient)
}
