package queries

import (
	"context"
	"log/slog"

	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"
)

var ErrRatesUnavailable = errs.NotFound("exchange rates not available")

type ExchangeRateReadStore interface {
	Get(ctx context.Context) (*shared.RateTable, error)
}

type ExchangeRateQueries interface {
	Get(ctx context.Context) (*shared.RateTable, error)
}

type exchangeRateQueriesImpl struct {
	store ExchangeRateReadStore
	cache shared.RateCache
}

func NewExchangeRateQueries(store ExchangeRateReadStore, cache shared.RateCache) ExchangeRateQueries {
	return &exchangeRateQueriesImpl{store: store, cache: cache}
}

// Get serves from the cache and repopulates it from Postgres on a miss.
func (q *exchangeRateQueriesImpl) Get(ctx context.Context) (*shared.RateTable, error) {
	table, err := q.cache.Get(ctx)
	if err == nil {
		return table, nil
	}
	if !errs.Is(err, shared.ErrCacheMiss) {
		slog.Warn("exchange rate cache read failed", "error", err.Error())
	}

	table, err = q.store.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRatesUnavailable
		}
		return nil, err
	}

	if err := q.cache.Set(ctx, *table); err != nil {
		slog.Warn("exchange rate cache write failed", "error", err.Error())
	}
	return table, nil
}
