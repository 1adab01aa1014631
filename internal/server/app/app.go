// Package app wires the dev feed server together and runs it.
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	serverHTTP "snapfeed/internal/server/http"
	"snapfeed/internal/server/repo"
	"snapfeed/pkg/config"
	"snapfeed/pkg/logger"
	"snapfeed/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func NewRouter(storage repo.Storage, redisClient *redis.Client, log *logger.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if redisClient != nil {
		r.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}

	serverHTTP.NewFeedHandler(storage, log).RegisterRoutes(r)
	return r
}

func Run(cfg *config.Config, log *logger.Logger, storage repo.Storage, redisClient *redis.Client) {
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: NewRouter(storage, redisClient, log),
	}

	go func() {
		log.Info("Feed server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down feed server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Feed server stopped")
}
