package readstore

import (
	"context"

	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	couponViewSelect = `SELECT id, code, discount_percentage, max_use_times, times_used,
	starts_at, expires_at, active, created_at, updated_at`

	affiliateViewSelect = `SELECT id, code, discount_amount, max_use_times, times_used,
	starts_at, expires_at, owner_id, active, created_at, updated_at`
)

type DiscountCodeReadStore struct {
	db db.DBTX
}

func NewDiscountCodeReadStore(db db.DBTX) *DiscountCodeReadStore {
	return &DiscountCodeReadStore{db: db}
}

func (r *DiscountCodeReadStore) ListCoupons(ctx context.Context, p queries.ListParams) ([]*queries.CouponView, int64, error) {
	lq := listQuery{selectSQL: couponViewSelect, fromSQL: "FROM coupons", idColumn: "id"}
	return fetchList[queries.CouponView](ctx, r.db, lq, p, "coupons")
}

func (r *DiscountCodeReadStore) FindCoupon(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	return fetchOne[queries.CouponView](ctx, r.db, couponViewSelect+` FROM coupons WHERE id = $1`, "coupon", id)
}

func (r *DiscountCodeReadStore) ListAffiliateCodes(ctx context.Context, p queries.ListParams) ([]*queries.AffiliateCodeView, int64, error) {
	lq := listQuery{selectSQL: affiliateViewSelect, fromSQL: "FROM affiliate_codes", idColumn: "id"}
	return fetchList[queries.AffiliateCodeView](ctx, r.db, lq, p, "affiliate codes")
}

func (r *DiscountCodeReadStore) FindAffiliateCode(ctx context.Context, id uuid.UUID) (*queries.AffiliateCodeView, error) {
	return fetchOne[queries.AffiliateCodeView](ctx, r.db, affiliateViewSelect+` FROM affiliate_codes WHERE id = $1`, "affiliate code", id)
}
