package commands

import (
	"context"
	"time"

	"course-checkout/internal/domain/course"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/patch"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CourseInput struct {
	Name              string
	Slug              string
	Description       string
	Category          string
	Price             decimal.Decimal
	DiscountAmount    *decimal.Decimal
	DiscountStartDate *time.Time
	DiscountEndDate   *time.Time
	StripePriceID     string
	Published         bool
}

// CoursePatch carries only the fields the caller sent.
type CoursePatch struct {
	Name              *string
	Slug              *string
	Description       *string
	Category          *string
	Price             *decimal.Decimal
	DiscountAmount    *decimal.Decimal
	DiscountStartDate *time.Time
	DiscountEndDate   *time.Time
	ClearDiscount     bool
	StripePriceID     *string
	Published         *bool
}

type CourseCommands interface {
	Create(ctx context.Context, in CourseInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p CoursePatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCourseCommands(uow shared.UnitOfWork, clk clock.Clock) CourseCommands {
	return &courseCommandsImpl{uow: uow, clock: clk}
}

func (uc *courseCommandsImpl) Create(ctx context.Context, in CourseInput) (uuid.UUID, error) {
	c, err := course.NewCourse(course.Params{
		Name:          in.Name,
		Slug:          in.Slug,
		Description:   in.Description,
		Category:      in.Category,
		Price:         in.Price,
		Discount:      buildDiscount(in.DiscountAmount, in.DiscountStartDate, in.DiscountEndDate),
		StripePriceID: in.StripePriceID,
		Published:     in.Published,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Courses().Create(ctx, c)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *courseCommandsImpl) Update(ctx context.Context, id uuid.UUID, p CoursePatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Courses().FindByID(ctx, id, false)
		if err != nil {
			return notFoundAs(err, course.ErrCourseNotFound)
		}

		discount := c.Discount()
		switch {
		case p.ClearDiscount:
			discount = nil
		case p.DiscountAmount != nil || p.DiscountStartDate != nil || p.DiscountEndDate != nil:
			var amount *decimal.Decimal
			var start, end *time.Time
			if discount != nil {
				amount, start, end = &discount.Amount, discount.StartsAt, discount.EndsAt
			}
			discount = buildDiscount(
				patch.CoalescePtr(p.DiscountAmount, amount),
				patch.CoalescePtr(p.DiscountStartDate, start),
				patch.CoalescePtr(p.DiscountEndDate, end),
			)
		}
		// Prices are edited as list prices. An edited discount starts over
		// unapplied; an untouched applied discount stays folded in.
		price := patch.Coalesce(p.Price, c.ListPrice())
		if discount != nil && discount == c.Discount() && discount.Applied {
			price = price.Sub(discount.Amount)
		}

		err = c.Update(course.Params{
			Name:          patch.Coalesce(p.Name, c.Name()),
			Slug:          patch.Coalesce(p.Slug, c.Slug()),
			Description:   patch.Coalesce(p.Description, c.Description()),
			Category:      patch.Coalesce(p.Category, c.Category()),
			Price:         price,
			Discount:      discount,
			StripePriceID: patch.Coalesce(p.StripePriceID, c.StripePriceID()),
			Published:     patch.Coalesce(p.Published, c.IsPublished()),
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.Courses().Update(ctx, c)
	})
}

func (uc *courseCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Courses().FindByID(ctx, id, false)
		if err != nil {
			return notFoundAs(err, course.ErrCourseNotFound)
		}
		c.Deactivate(uc.clock.Now())
		return tx.Courses().Update(ctx, c)
	})
}

func buildDiscount(amount *decimal.Decimal, start, end *time.Time) *course.Discount {
	if amount == nil {
		return nil
	}
	return &course.Discount{Amount: *amount, StartsAt: start, EndsAt: end}
}

// notFoundAs swaps a repository not-found error for the domain sentinel.
func notFoundAs(err, sentinel error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return sentinel
	}
	return err
}
