package commands

import (
	"context"
	"log/slog"

	"course-checkout/internal/domain/course"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/usecase/shared"
)

type DiscountWindowCommands interface {
	// Run applies or lifts course discounts whose window boundary has passed
	// and returns how many courses changed.
	Run(ctx context.Context) (int, error)
}

type discountWindowCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDiscountWindowCommands(uow shared.UnitOfWork, clk clock.Clock) DiscountWindowCommands {
	return &discountWindowCommandsImpl{uow: uow, clock: clk}
}

func (uc *discountWindowCommandsImpl) Run(ctx context.Context) (int, error) {
	var updated int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated = 0
		courses, err := tx.Courses().LockWithDiscount(ctx)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		for _, c := range courses {
			outcome, terr := c.ToggleDiscount(now)
			if terr != nil {
				slog.Warn("skipping discount toggle", "course_id", c.ID(), "error", terr)
				continue
			}
			if outcome == course.ToggleNone {
				continue
			}
			if err := tx.Courses().Update(ctx, c); err != nil {
				return err
			}
			slog.Info("discount window toggled", "course_id", c.ID(), "outcome", string(outcome), "price", c.Price().String())
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
