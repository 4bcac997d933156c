package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	ListApprovedByCourse(ctx context.Context, courseID uuid.UUID, p ListParams) ([]*ReviewView, int64, error)
}

type ReviewQueries interface {
	// ListByCourse returns approved reviews only.
	ListByCourse(ctx context.Context, courseID uuid.UUID, p ListParams) (*Page[*ReviewView], error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByCourse(ctx context.Context, courseID uuid.UUID, p ListParams) (*Page[*ReviewView], error) {
	return listPage(p, func() ([]*ReviewView, int64, error) {
		return q.store.ListApprovedByCourse(ctx, courseID, p)
	})
}
