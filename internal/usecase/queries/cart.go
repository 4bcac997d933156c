package queries

import (
	"context"

	"github.com/google/uuid"
)

type CartReadStore interface {
	// Items returns the user's cart, oldest first, skipping inactive courses.
	Items(ctx context.Context, userID uuid.UUID) ([]*CartItemView, error)
}

type CartQueries interface {
	GetMyCart(ctx context.Context, userID uuid.UUID) ([]*CartItemView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) GetMyCart(ctx context.Context, userID uuid.UUID) ([]*CartItemView, error) {
	items, err := q.store.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*CartItemView{}
	}
	return items, nil
}
