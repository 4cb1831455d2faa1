package handlers

import (
	"go.uber.org/zap"

	"github.com/stocktrack/inventory-api/internal/cache"
	repo "github.com/stocktrack/inventory-api/internal/repo"
)

var (
	itemRepo  repo.ItemRepository
	listCache *cache.ListCache
	logger    = zap.NewNop()
)

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

// SetListCache wires the Redis list cache. A nil cache disables caching.
func SetListCache(c *cache.ListCache) {
	listCache = c
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
