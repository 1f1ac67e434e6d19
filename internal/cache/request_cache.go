package cache

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/metrics"
)

type RequestRepository interface {
	ListActive(ctx context.Context) ([]lifecycle.FoodRequest, error)
}

// RequestCache holds snapshots of requests that are still moving through the lifecycle.
// Completed requests are evicted on Set.
type RequestCache struct {
	mu     sync.RWMutex
	cache  map[string]lifecycle.FoodRequest
	repo   RequestRepository
	logger *zap.Logger
}

func NewRequestCache(repo RequestRepository, logger *zap.Logger) *RequestCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestCache{
		cache:  make(map[string]lifecycle.FoodRequest),
		repo:   repo,
		logger: logger,
	}
}

func (c *RequestCache) LoadInitialData(ctx context.Context) error {
	c.logger.Info("loading active requests into cache")
	requests, err := c.repo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active requests: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, req := range requests {
		if req.Status.Active() {
			c.cache[req.ID] = req
		}
	}
	metrics.RequestCacheItems.Set(float64(len(c.cache)))
	c.logger.Info("request cache warmed", zap.Int("items", len(c.cache)))
	return nil
}

func (c *RequestCache) Get(requestID string) (lifecycle.FoodRequest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	req, found := c.cache[requestID]
	return req, found
}

// Set stores req unless it is newer in the cache already. Versions only grow, so an
// older snapshot arriving late never overwrites a newer one.
func (c *RequestCache) Set(req lifecycle.FoodRequest) {
	if !req.Status.Active() {
		c.Delete(req.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.cache[req.ID]; ok && cur.Version > req.Version {
		return
	}
	c.cache[req.ID] = req
	metrics.RequestCacheItems.Set(float64(len(c.cache)))
	c.logger.Debug("cache set", zap.String("request_id", req.ID), zap.String("status", string(req.Status)))
}

func (c *RequestCache) Delete(requestID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[requestID]; found {
		delete(c.cache, requestID)
		metrics.RequestCacheItems.Set(float64(len(c.cache)))
		c.logger.Debug("cache delete", zap.String("request_id", requestID))
	}
}

func (c *RequestCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
