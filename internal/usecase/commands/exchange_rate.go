package commands

import (
	"context"
	"log/slog"

	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"
)

type ExchangeRateCommands interface {
	// Refresh replaces the stored rate table with a fresh one from the provider.
	Refresh(ctx context.Context) (*shared.RateTable, error)
}

type exchangeRateCommandsImpl struct {
	uow     shared.UnitOfWork
	fetcher shared.RateFetcher
	cache   shared.RateCache
}

func NewExchangeRateCommands(uow shared.UnitOfWork, fetcher shared.RateFetcher, cache shared.RateCache) ExchangeRateCommands {
	return &exchangeRateCommandsImpl{uow: uow, fetcher: fetcher, cache: cache}
}

func (uc *exchangeRateCommandsImpl) Refresh(ctx context.Context) (*shared.RateTable, error) {
	table, err := uc.fetcher.Fetch(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "fetch exchange rates")
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ExchangeRates().Upsert(ctx, *table)
	})
	if err != nil {
		return nil, err
	}

	// Postgres is the source of truth; a stale cache is repopulated on the next read miss.
	if err := uc.cache.Set(ctx, *table); err != nil {
		slog.Warn("exchange rate cache write failed", "error", err.Error())
	}
	return table, nil
}
