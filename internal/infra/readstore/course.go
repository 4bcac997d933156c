package readstore

import (
	"context"

	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

const courseViewSelect = `SELECT id, name, slug, description, category, price,
	discount_amount, discount_starts_at, discount_ends_at, discount_applied,
	total_sold, rating, stripe_price_id, is_published, active, created_at, updated_at`

type CourseReadStore struct {
	db db.DBTX
}

func NewCourseReadStore(db db.DBTX) *CourseReadStore {
	return &CourseReadStore{db: db}
}

func (r *CourseReadStore) List(ctx context.Context, p queries.ListParams, includeInactive bool) ([]*queries.CourseView, int64, error) {
	lq := listQuery{
		selectSQL: courseViewSelect,
		fromSQL:   "FROM courses",
		idColumn:  "id",
	}
	if !includeInactive {
		lq.conds = []string{"active"}
	}
	return fetchList[queries.CourseView](ctx, r.db, lq, p, "courses")
}

func (r *CourseReadStore) FindByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*queries.CourseView, error) {
	return fetchOne[queries.CourseView](ctx, r.db,
		courseViewSelect+` FROM courses WHERE id = $1 AND (active OR $2)`, "course", id, includeInactive)
}
