package readstore

import (
	"context"

	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) ListApprovedByCourse(ctx context.Context, courseID uuid.UUID, p queries.ListParams) ([]*queries.ReviewView, int64, error) {
	lq := listQuery{
		selectSQL: `SELECT r.id, r.course_id, r.user_id, u.name AS user_name, r.rating, r.comment, r.approved, r.created_at`,
		fromSQL:   `FROM reviews r JOIN users u ON u.id = r.user_id`,
		conds:     []string{"r.course_id = $1", "r.approved"},
		args:      []any{courseID},
		idColumn:  "r.id",
	}
	return fetchList[queries.ReviewView](ctx, r.db, lq, p, "reviews")
}
