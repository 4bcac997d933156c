package request

import (
	"time"

	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CreateCouponRequest struct {
	Code        string          `json:"code" binding:"required,max=64"`
	Percentage  decimal.Decimal `json:"discountPercentage"`
	MaxUseTimes int             `json:"maxUseTimes" binding:"required,min=1"`
	StartsAt    time.Time       `json:"startDate" binding:"required"`
	ExpiresAt   time.Time       `json:"expiryDate" binding:"required"`
}

func (r *CreateCouponRequest) ToCommand() commands.CouponInput {
	return commands.CouponInput{
		Code:        r.Code,
		Percentage:  r.Percentage,
		MaxUseTimes: r.MaxUseTimes,
		StartsAt:    r.StartsAt,
		ExpiresAt:   r.ExpiresAt,
	}
}

type UpdateCouponRequest struct {
	Code        *string          `json:"code" binding:"omitempty,min=1,max=64"`
	Percentage  *decimal.Decimal `json:"discountPercentage"`
	MaxUseTimes *int             `json:"maxUseTimes" binding:"omitempty,min=1"`
	StartsAt    *time.Time       `json:"startDate"`
	ExpiresAt   *time.Time       `json:"expiryDate"`
}

func (r *UpdateCouponRequest) ToCommand() (commands.CouponPatch, error) {
	var p commands.CouponPatch
	if err := copier.Copy(&p, r); err != nil {
		return commands.CouponPatch{}, errs.Wrap(err, "map coupon patch")
	}
	return p, nil
}

type CreateAffiliateCodeRequest struct {
	Code           string          `json:"code" binding:"required,max=64"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	MaxUseTimes    int             `json:"maxUseTimes" binding:"required,min=1"`
	StartsAt       time.Time       `json:"startDate" binding:"required"`
	ExpiresAt      time.Time       `json:"expiryDate" binding:"required"`
	OwnerID        *uuid.UUID      `json:"ownerId"`
}

func (r *CreateAffiliateCodeRequest) ToCommand() commands.AffiliateInput {
	return commands.AffiliateInput{
		Code:           r.Code,
		DiscountAmount: r.DiscountAmount,
		MaxUseTimes:    r.MaxUseTimes,
		StartsAt:       r.StartsAt,
		ExpiresAt:      r.ExpiresAt,
		OwnerID:        r.OwnerID,
	}
}

type UpdateAffiliateCodeRequest struct {
	Code           *string          `json:"code" binding:"omitempty,min=1,max=64"`
	DiscountAmount *decimal.Decimal `json:"discountAmount"`
	MaxUseTimes    *int             `json:"maxUseTimes" binding:"omitempty,min=1"`
	StartsAt       *time.Time       `json:"startDate"`
	ExpiresAt      *time.Time       `json:"expiryDate"`
	OwnerID        *uuid.UUID       `json:"ownerId"`
}

func (r *UpdateAffiliateCodeRequest) ToCommand() (commands.AffiliatePatch, error) {
	var p commands.AffiliatePatch
	if err := copier.Copy(&p, r); err != nil {
		return commands.AffiliatePatch{}, errs.Wrap(err, "map affiliate code patch")
	}
	return p, nil
}
