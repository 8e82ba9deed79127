package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
)

const dishCachePrefix = "dish_"

// DishCache keeps dish list results in Redis. A nil client disables it.
type DishCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewDishCache(rdb redis.UniversalClient, ttl time.Duration) *DishCache {
	return &DishCache{rdb: rdb, ttl: ttl}
}

func dishCacheKey(categoryID int64, status *int) string {
	if status == nil {
		return fmt.Sprintf("%s%d_all", dishCachePrefix, categoryID)
	}
	return fmt.Sprintf("%s%d_%d", dishCachePrefix, categoryID, *status)
}

// Get reports a miss on any cache failure; the store is the source of truth.
func (c *DishCache) Get(ctx context.Context, key string) ([]dto.DishDto, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.S().Warnw("dish cache read failed", "key", key, "err", err)
		}
		return nil, false
	}
	var out []dto.DishDto
	if err := sonic.Unmarshal(raw, &out); err != nil {
		logger.S().Warnw("dish cache decode failed", "key", key, "err", err)
		return nil, false
	}
	return out, true
}

func (c *DishCache) Set(ctx context.Context, key string, rows []dto.DishDto) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := sonic.Marshal(rows)
	if err != nil {
		logger.S().Warnw("dish cache encode failed", "key", key, "err", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.S().Warnw("dish cache write failed", "key", key, "err", err)
	}
}

// Evict drops every cached dish list.
func (c *DishCache) Evict(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, dishCachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
