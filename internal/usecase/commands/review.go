package commands

import (
	"context"

	"course-checkout/internal/domain/course"
	domreview "course-checkout/internal/domain/review"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	CourseID uuid.UUID
	Rating   int
	Comment  string
}

type ReviewCommands interface {
	Create(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (uuid.UUID, error)
	SetApproval(ctx context.Context, reviewID uuid.UUID, approved bool) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (uuid.UUID, error) {
	rev, err := domreview.NewReview(userID, req.CourseID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	reads := uc.uow.CommandReads()
	if _, err := reads.CourseByID(ctx, req.CourseID); err != nil {
		return uuid.Nil, notFoundAs(err, course.ErrCourseNotFound)
	}
	enrolled, err := reads.IsEnrolled(ctx, userID, req.CourseID)
	if err != nil {
		return uuid.Nil, err
	}
	if !enrolled {
		return uuid.Nil, domreview.ErrNotEnrolled
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reviews().Create(ctx, rev)
	})
	if errs.Is(err, errs.ErrConflict) {
		return uuid.Nil, domreview.ErrAlreadyReviewed
	}
	if err != nil {
		return uuid.Nil, err
	}
	return rev.ID(), nil
}

// SetApproval recomputes the course rating whenever the approval state changes.
func (uc *reviewCommandsImpl) SetApproval(ctx context.Context, reviewID uuid.UUID, approved bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return notFoundAs(err, domreview.ErrReviewNotFound)
		}
		if !rev.SetApproved(approved, uc.clock.Now()) {
			return nil
		}
		if err := tx.Reviews().Update(ctx, rev); err != nil {
			return err
		}

		ratings, err := tx.Reviews().ApprovedRatings(ctx, rev.CourseID())
		if err != nil {
			return err
		}
		return tx.Courses().SetRating(ctx, rev.CourseID(), domreview.AverageRating(ratings))
	})
}
