package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stocktrack/inventory-api/internal/cache"
	"github.com/stocktrack/inventory-api/internal/config"
	"github.com/stocktrack/inventory-api/internal/db"
	api "github.com/stocktrack/inventory-api/internal/http"
	"github.com/stocktrack/inventory-api/internal/http/handlers"
	"github.com/stocktrack/inventory-api/internal/repo"
)

// @title Inventory Items API
// @version 1.0
// @description REST API for managing inventory items with dashboard metrics.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer logger.Sync()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := db.EnsureSchema(context.Background(), database); err != nil {
		logger.Fatal("could not ensure schema", zap.Error(err))
	}

	handlers.SetItemRepo(repo.NewPostgresItemRepository(database))
	handlers.SetLogger(logger)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("could not connect to Redis", zap.Error(err))
		}
		defer rdb.Close()
		handlers.SetListCache(cache.NewListCache(rdb, cfg.CacheTTL, logger))
	}

	api.SetLogger(logger)
	api.SetAllowedOrigins(cfg.AllowedOrigins)

	r := api.NewRouter()
	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = lvl
	return zcfg.Build()
}
