//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"course-checkout/internal/infra/cache"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)
	return "redis://" + host + ":" + port.Port() + "/0"
}

func TestRateCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client, closeFn, err := cache.Connect(ctx, config.RedisConfig{URL: startRedis(t)})
	require.NoError(t, err)
	t.Cleanup(closeFn)

	rc := cache.NewRateCache(client, time.Minute)

	_, err = rc.Get(ctx)
	require.ErrorIs(t, err, shared.ErrCacheMiss)

	table := shared.RateTable{
		Base:      "USD",
		Rates:     map[string]decimal.Decimal{"INR": decimal.RequireFromString("83.12"), "EUR": decimal.RequireFromString("0.92")},
		FetchedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, rc.Set(ctx, table))

	got, err := rc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Base)
	assert.True(t, table.Rates["INR"].Equal(got.Rates["INR"]))
	assert.True(t, table.FetchedAt.Equal(got.FetchedAt))

	ttl, err := client.TTL(ctx, "exchange:rates").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}
