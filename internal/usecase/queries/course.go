package queries

import (
	"context"

	"course-checkout/internal/domain/course"
	"course-checkout/internal/infra"

	"github.com/google/uuid"
)

type CourseReadStore interface {
	List(ctx context.Context, p ListParams, includeInactive bool) ([]*CourseView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*CourseView, error)
}

type CourseQueries interface {
	// List hides inactive courses unless includeInactive is set by an admin route.
	List(ctx context.Context, p ListParams, includeInactive bool) (*Page[*CourseView], error)
	Get(ctx context.Context, id uuid.UUID, includeInactive bool) (*CourseView, error)
}

type courseQueriesImpl struct {
	store CourseReadStore
}

func NewCourseQueries(store CourseReadStore) CourseQueries {
	return &courseQueriesImpl{store: store}
}

func (q *courseQueriesImpl) List(ctx context.Context, p ListParams, includeInactive bool) (*Page[*CourseView], error) {
	return listPage(p, func() ([]*CourseView, int64, error) {
		return q.store.List(ctx, p, includeInactive)
	})
}

func (q *courseQueriesImpl) Get(ctx context.Context, id uuid.UUID, includeInactive bool) (*CourseView, error) {
	v, err := q.store.FindByID(ctx, id, includeInactive)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, course.ErrCourseNotFound
		}
		return nil, err
	}
	return v, nil
}
