package queries

import (
	"context"

	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound        = errs.NotFound("coupon not found")
	ErrAffiliateCodeNotFound = errs.NotFound("affiliate code not found")
)

type DiscountCodeReadStore interface {
	ListCoupons(ctx context.Context, p ListParams) ([]*CouponView, int64, error)
	FindCoupon(ctx context.Context, id uuid.UUID) (*CouponView, error)
	ListAffiliateCodes(ctx context.Context, p ListParams) ([]*AffiliateCodeView, int64, error)
	FindAffiliateCode(ctx context.Context, id uuid.UUID) (*AffiliateCodeView, error)
}

type DiscountCodeQueries interface {
	ListCoupons(ctx context.Context, p ListParams) (*Page[*CouponView], error)
	GetCoupon(ctx context.Context, id uuid.UUID) (*CouponView, error)
	ListAffiliateCodes(ctx context.Context, p ListParams) (*Page[*AffiliateCodeView], error)
	GetAffiliateCode(ctx context.Context, id uuid.UUID) (*AffiliateCodeView, error)
}

type discountCodeQueriesImpl struct {
	store DiscountCodeReadStore
}

func NewDiscountCodeQueries(store DiscountCodeReadStore) DiscountCodeQueries {
	return &discountCodeQueriesImpl{store: store}
}

func (q *discountCodeQueriesImpl) ListCoupons(ctx context.Context, p ListParams) (*Page[*CouponView], error) {
	return listPage(p, func() ([]*CouponView, int64, error) {
		return q.store.ListCoupons(ctx, p)
	})
}

func (q *discountCodeQueriesImpl) GetCoupon(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	v, err := q.store.FindCoupon(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, ErrCouponNotFound
	}
	return v, err
}

func (q *discountCodeQueriesImpl) ListAffiliateCodes(ctx context.Context, p ListParams) (*Page[*AffiliateCodeView], error) {
	return listPage(p, func() ([]*AffiliateCodeView, int64, error) {
		return q.store.ListAffiliateCodes(ctx, p)
	})
}

func (q *discountCodeQueriesImpl) GetAffiliateCode(ctx context.Context, id uuid.UUID) (*AffiliateCodeView, error) {
	v, err := q.store.FindAffiliateCode(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, ErrAffiliateCodeNotFound
	}
	return v, err
}
