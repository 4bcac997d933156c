package review

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	courseID  uuid.UUID
	rating    Rating
	comment   Comment
	approved  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewReview creates an unapproved review. Only approved reviews count towards
// the course rating.
func NewReview(userID, courseID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		userID:    userID,
		courseID:  courseID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, userID, courseID uuid.UUID, rating int, comment string, approved bool, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		courseID:  courseID,
		rating:    Rating(rating),
		comment:   Comment(comment),
		approved:  approved,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// SetApproved reports whether the approval state changed.
func (r *Review) SetApproved(approved bool, now time.Time) bool {
	if r.approved == approved {
		return false
	}
	r.approved = approved
	r.updatedAt = now
	return true
}

// AverageRating is the mean of the given ratings rounded to one decimal, or
// zero when there are none.
func AverageRating(ratings []int) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(ratings)))).Round(1)
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) CourseID() uuid.UUID  { return r.courseID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) IsApproved() bool     { return r.approved }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
