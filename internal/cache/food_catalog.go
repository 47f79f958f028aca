package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/nutrition"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const megabyte = 1024 * 1024

type foodsLoader interface {
	GetFoods(ctx context.Context, ids []int) (map[int]nutrition.FoodItem, error)
}

// FoodCatalog is a read-through cache of food reference data in front of the food repo.
type FoodCatalog struct {
	cache          *freecache.Cache
	loader         foodsLoader
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewFoodCatalog(loader foodsLoader, sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *FoodCatalog {
	if sizeMB <= 0 {
		sizeMB = 16
	}
	return &FoodCatalog{
		// freecache enforces a 512KB minimum itself
		cache:          freecache.NewCache(sizeMB * megabyte),
		loader:         loader,
		ttlSeconds:     int(ttl.Seconds()),
		metricsManager: metricsManager,
	}
}

func foodCacheKey(id int) []byte {
	return []byte(fmt.Sprintf("food::%d", id))
}

// GetMany returns the foods found for ids. Unknown ids are absent from the result.
func (c *FoodCatalog) GetMany(ctx context.Context, ids []int) (_ map[int]nutrition.FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.foods.getmany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	foods := make(map[int]nutrition.FoodItem, len(ids))
	var missing []int
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		foodBytes, err := c.cache.Get(foodCacheKey(id))
		if err != nil {
			missing = append(missing, id)
			continue
		}
		var food nutrition.FoodItem
		if err := json.Unmarshal(foodBytes, &food); err != nil {
			log.Errorf("failed to unmarshal food %d from cache: %s", id, err)
			missing = append(missing, id)
			continue
		}
		foods[id] = food
	}
	span.SetAttributes(
		attribute.Int("foods.hit", len(foods)),
		attribute.Int("foods.miss", len(missing)),
	)
	c.countLookups(len(foods), len(missing))

	if len(missing) == 0 {
		return foods, nil
	}

	loaded, err := c.loader.GetFoods(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("load foods: %w", err)
	}
	for id, food := range loaded {
		foods[id] = food
		foodBytes, err := json.Marshal(food)
		if err != nil {
			log.Errorf("failed to marshal food %d for cache: %s", id, err)
			continue
		}
		if err := c.cache.Set(foodCacheKey(id), foodBytes, c.ttlSeconds); err != nil {
			log.Errorf("failed to write food cache for %d: %s", id, err)
		}
	}

	return foods, nil
}

func (c *FoodCatalog) countLookups(hits, misses int) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterFoodCache.WithLabelValues("hit").Add(float64(hits))
	c.metricsManager.CounterFoodCache.WithLabelValues("miss").Add(float64(misses))
}

func (c *FoodCatalog) Clear() {
	c.cache.Clear()
}
