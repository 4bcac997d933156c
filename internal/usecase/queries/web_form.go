package queries

import (
	"context"

	"course-checkout/internal/domain/webform"
	"course-checkout/internal/infra"

	"github.com/google/uuid"
)

type WebFormReadStore interface {
	List(ctx context.Context, p ListParams) ([]*WebFormView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*WebFormView, error)
}

type WebFormQueries interface {
	List(ctx context.Context, p ListParams) (*Page[*WebFormView], error)
	Get(ctx context.Context, id uuid.UUID) (*WebFormView, error)
}

type webFormQueriesImpl struct {
	store WebFormReadStore
}

func NewWebFormQueries(store WebFormReadStore) WebFormQueries {
	return &webFormQueriesImpl{store: store}
}

func (q *webFormQueriesImpl) List(ctx context.Context, p ListParams) (*Page[*WebFormView], error) {
	return listPage(p, func() ([]*WebFormView, int64, error) {
		return q.store.List(ctx, p)
	})
}

func (q *webFormQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*WebFormView, error) {
	v, err := q.store.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, webform.ErrFormNotFound
	}
	return v, err
}
