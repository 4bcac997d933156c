//go:build unit || e2e

package builder

import (
	"time"

	domreview "course-checkout/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID    uuid.UUID
	CourseID  uuid.UUID
	Rating    int
	Comment   string
	Approved  bool
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:    uuid.New(),
		CourseID:  uuid.New(),
		Rating:    5,
		Comment:   "Clear explanations and good exercises",
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.UserID, r.CourseID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildPersisted() *domreview.Review {
	return domreview.Reconstruct(uuid.New(), r.UserID, r.CourseID, r.Rating, r.Comment, r.Approved, r.CreatedAt, r.CreatedAt)
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithCourseID(courseID uuid.UUID) *ReviewBuilder {
	r.CourseID = courseID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) AsApproved() *ReviewBuilder {
	r.Approved = true
	return r
}
