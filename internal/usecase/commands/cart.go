package commands

import (
	"context"

	"course-checkout/internal/domain/course"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotInCart = errs.NotFound("course not in cart")

type CartCommands interface {
	// Add reports false when the course was already in the cart.
	Add(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	Remove(ctx context.Context, userID, courseID uuid.UUID) error
}

type cartCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{uow: uow, clock: clk}
}

func (uc *cartCommandsImpl) Add(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	var added bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Courses().FindByID(ctx, courseID, false); err != nil {
			return notFoundAs(err, course.ErrCourseNotFound)
		}
		var err error
		added, err = tx.Carts().Add(ctx, userID, courseID, uc.clock.Now())
		return err
	})
	return added, err
}

func (uc *cartCommandsImpl) Remove(ctx context.Context, userID, courseID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Carts().Remove(ctx, userID, courseID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrNotInCart
		}
		return nil
	})
}
