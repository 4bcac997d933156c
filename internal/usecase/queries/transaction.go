package queries

import (
	"context"

	"course-checkout/internal/domain/transaction"
	"course-checkout/internal/infra"

	"github.com/google/uuid"
)

type TransactionReadStore interface {
	List(ctx context.Context, p ListParams) ([]*TransactionView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
}

type TransactionQueries interface {
	List(ctx context.Context, p ListParams) (*Page[*TransactionView], error)
	Get(ctx context.Context, id uuid.UUID) (*TransactionView, error)
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

func (q *transactionQueriesImpl) List(ctx context.Context, p ListParams) (*Page[*TransactionView], error) {
	return listPage(p, func() ([]*TransactionView, int64, error) {
		return q.store.List(ctx, p)
	})
}

func (q *transactionQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*TransactionView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, transaction.ErrTransactionNotFound
		}
		return nil, err
	}
	return v, nil
}
