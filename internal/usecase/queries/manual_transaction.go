package queries

import (
	"context"

	"course-checkout/internal/domain/manualtransaction"
	"course-checkout/internal/infra"

	"github.com/google/uuid"
)

type ManualTransactionReadStore interface {
	List(ctx context.Context, p ListParams) ([]*ManualTransactionView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ManualTransactionView, error)
}

type ManualTransactionQueries interface {
	List(ctx context.Context, p ListParams) (*Page[*ManualTransactionView], error)
	Get(ctx context.Context, id uuid.UUID) (*ManualTransactionView, error)
}

type manualTransactionQueriesImpl struct {
	store ManualTransactionReadStore
}

func NewManualTransactionQueries(store ManualTransactionReadStore) ManualTransactionQueries {
	return &manualTransactionQueriesImpl{store: store}
}

func (q *manualTransactionQueriesImpl) List(ctx context.Context, p ListParams) (*Page[*ManualTransactionView], error) {
	return listPage(p, func() ([]*ManualTransactionView, int64, error) {
		return q.store.List(ctx, p)
	})
}

func (q *manualTransactionQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ManualTransactionView, error) {
	v, err := q.store.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, manualtransaction.ErrTransactionNotFound
	}
	return v, err
}
