package repository

import (
	"context"
	"time"

	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type ExchangeRateRepository struct {
	db db.DBTX
}

func NewExchangeRateRepository(db db.DBTX) *ExchangeRateRepository {
	return &ExchangeRateRepository{db: db}
}

// Upsert keeps a single row; the table is replaced wholesale on every refresh.
func (r *ExchangeRateRepository) Upsert(ctx context.Context, table shared.RateTable) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO exchange_rates (id, base, rates, fetched_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET base = EXCLUDED.base, rates = EXCLUDED.rates, fetched_at = EXCLUDED.fetched_at`,
		table.Base, table.Rates, table.FetchedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert exchange rates", err)
	}
	return nil
}

func (r *ExchangeRateRepository) Get(ctx context.Context) (*shared.RateTable, error) {
	var (
		base      string
		rates     map[string]decimal.Decimal
		fetchedAt time.Time
	)
	err := r.db.QueryRow(ctx, `SELECT base, rates, fetched_at FROM exchange_rates WHERE id = 1`).
		Scan(&base, &rates, &fetchedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load exchange rates", err)
	}
	return &shared.RateTable{Base: base, Rates: rates, FetchedAt: fetchedAt}, nil
}
