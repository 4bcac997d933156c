package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const rateTableKey = "exchange:rates"

type RateCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRateCache(client redis.Cmdable, ttl time.Duration) *RateCache {
	return &RateCache{client: client, ttl: ttl}
}

func (c *RateCache) Get(ctx context.Context) (*shared.RateTable, error) {
	raw, err := c.client.Get(ctx, rateTableKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrCacheMiss
	}
	if err != nil {
		return nil, errs.Wrap(err, "read rate table from redis")
	}

	var table shared.RateTable
	if err := json.Unmarshal(raw, &table); err != nil {
		// A corrupt entry behaves like a miss so the store can repopulate it.
		return nil, errs.Mark(err, shared.ErrCacheMiss)
	}
	return &table, nil
}

func (c *RateCache) Set(ctx context.Context, table shared.RateTable) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return errs.Wrap(err, "encode rate table")
	}
	if err := c.client.Set(ctx, rateTableKey, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "write rate table to redis")
	}
	return nil
}
