package commands

import (
	"context"
	"time"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/patch"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound    = errs.NotFound("coupon not found")
	ErrAffiliateNotFound = errs.NotFound("affiliate code not found")
	ErrOwnerNotFound     = errs.Validation("affiliate owner does not exist")
)

type CouponInput struct {
	Code        string
	Percentage  decimal.Decimal
	MaxUseTimes int
	StartsAt    time.Time
	ExpiresAt   time.Time
}

type CouponPatch struct {
	Code        *string
	Percentage  *decimal.Decimal
	MaxUseTimes *int
	StartsAt    *time.Time
	ExpiresAt   *time.Time
}

type AffiliateInput struct {
	Code           string
	DiscountAmount decimal.Decimal
	MaxUseTimes    int
	StartsAt       time.Time
	ExpiresAt      time.Time
	OwnerID        *uuid.UUID
}

type AffiliatePatch struct {
	Code           *string
	DiscountAmount *decimal.Decimal
	MaxUseTimes    *int
	StartsAt       *time.Time
	ExpiresAt      *time.Time
	OwnerID        *uuid.UUID
}

type DiscountCodeCommands interface {
	CreateCoupon(ctx context.Context, in CouponInput) (uuid.UUID, error)
	UpdateCoupon(ctx context.Context, id uuid.UUID, p CouponPatch) error
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
	CreateAffiliate(ctx context.Context, in AffiliateInput) (uuid.UUID, error)
	UpdateAffiliate(ctx context.Context, id uuid.UUID, p AffiliatePatch) error
	DeleteAffiliate(ctx context.Context, id uuid.UUID) error
}

type discountCodeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDiscountCodeCommands(uow shared.UnitOfWork, clk clock.Clock) DiscountCodeCommands {
	return &discountCodeCommandsImpl{uow: uow, clock: clk}
}

func (uc *discountCodeCommandsImpl) CreateCoupon(ctx context.Context, in CouponInput) (uuid.UUID, error) {
	c, err := coupon.NewCoupon(coupon.Params(in), uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Create(ctx, c)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *discountCodeCommandsImpl) UpdateCoupon(ctx context.Context, id uuid.UUID, p CouponPatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrCouponNotFound)
		}
		err = c.Update(coupon.Params{
			Code:        patch.Coalesce(p.Code, c.Code().String()),
			Percentage:  patch.Coalesce(p.Percentage, c.Percentage().Decimal()),
			MaxUseTimes: patch.Coalesce(p.MaxUseTimes, c.MaxUseTimes()),
			StartsAt:    patch.Coalesce(p.StartsAt, c.StartsAt()),
			ExpiresAt:   patch.Coalesce(p.ExpiresAt, c.ExpiresAt()),
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.Coupons().Update(ctx, c)
	})
}

func (uc *discountCodeCommandsImpl) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrCouponNotFound)
		}
		c.Deactivate(uc.clock.Now())
		return tx.Coupons().Update(ctx, c)
	})
}

func (uc *discountCodeCommandsImpl) CreateAffiliate(ctx context.Context, in AffiliateInput) (uuid.UUID, error) {
	a, err := affiliate.NewCode(affiliate.Params(in), uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Affiliates().Create(ctx, a); err != nil {
			return err
		}
		return uc.linkOwner(ctx, tx, a.ID(), nil, a.OwnerID())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return a.ID(), nil
}

func (uc *discountCodeCommandsImpl) UpdateAffiliate(ctx context.Context, id uuid.UUID, p AffiliatePatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Affiliates().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrAffiliateNotFound)
		}
		prevOwner := a.OwnerID()
		err = a.Update(affiliate.Params{
			Code:           patch.Coalesce(p.Code, a.Code().String()),
			DiscountAmount: patch.Coalesce(p.DiscountAmount, a.DiscountAmount()),
			MaxUseTimes:    patch.Coalesce(p.MaxUseTimes, a.MaxUseTimes()),
			StartsAt:       patch.Coalesce(p.StartsAt, a.StartsAt()),
			ExpiresAt:      patch.Coalesce(p.ExpiresAt, a.ExpiresAt()),
			OwnerID:        patch.CoalescePtr(p.OwnerID, a.OwnerID()),
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Affiliates().Update(ctx, a); err != nil {
			return err
		}
		return uc.linkOwner(ctx, tx, a.ID(), prevOwner, a.OwnerID())
	})
}

// linkOwner points the owner's account at the code, and unlinks a previous
// owner that still points at it.
func (uc *discountCodeCommandsImpl) linkOwner(ctx context.Context, tx shared.Tx, codeID uuid.UUID, prev, next *uuid.UUID) error {
	now := uc.clock.Now()
	if prev != nil && (next == nil || *prev != *next) {
		old, err := tx.Users().FindByID(ctx, *prev)
		if err != nil && !errs.Is(err, errs.ErrNotFound) {
			return err
		}
		if old != nil && old.AffiliateCodeID() != nil && *old.AffiliateCodeID() == codeID {
			old.AssignAffiliateCode(nil, now)
			if err := tx.Users().Update(ctx, old); err != nil {
				return err
			}
		}
	}
	if next == nil {
		return nil
	}
	owner, err := tx.Users().FindByID(ctx, *next)
	if err != nil {
		return notFoundAs(err, ErrOwnerNotFound)
	}
	owner.AssignAffiliateCode(&codeID, now)
	return tx.Users().Update(ctx, owner)
}

func (uc *discountCodeCommandsImpl) DeleteAffiliate(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Affiliates().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrAffiliateNotFound)
		}
		a.Deactivate(uc.clock.Now())
		return tx.Affiliates().Update(ctx, a)
	})
}
