package converter

import (
	"time"

	"course-checkout/internal/domain/review"

	"github.com/google/uuid"
)

const ReviewColumns = `id, user_id, course_id, rating, comment, approved, created_at, updated_at`

type ReviewRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CourseID  uuid.UUID `db:"course_id"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	Approved  bool      `db:"approved"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func ReviewFromRow(r ReviewRow) *review.Review {
	return review.Reconstruct(r.ID, r.UserID, r.CourseID, r.Rating, r.Comment, r.Approved, r.CreatedAt, r.UpdatedAt)
}

func ReviewArgs(r *review.Review) []any {
	return []any{
		r.ID(), r.UserID(), r.CourseID(), r.Rating().Value(), r.Comment().String(), r.IsApproved(), r.CreatedAt(), r.UpdatedAt(),
	}
}
