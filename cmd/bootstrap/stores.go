package bootstrap

import (
	"context"
	"time"

	"course-checkout/internal/infra/cache"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisConnectTimeout = 5 * time.Second

// StoreModule opens Postgres and Redis and closes both when the app stops.
var StoreModule = fx.Module("stores",
	fx.Provide(
		NewDB,
		NewRedis,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	closeOnStop(lc, cleanup)
	return pool, nil
}

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, cleanup, err := cache.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	closeOnStop(lc, cleanup)
	return client, nil
}

func closeOnStop(lc fx.Lifecycle, cleanup func()) {
	if cleanup == nil {
		return
	}
	lc.Append(fx.StopHook(cleanup))
}
