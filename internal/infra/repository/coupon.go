package repository

import (
	"context"

	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository/converter"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(db db.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupons (`+converter.CouponColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		converter.CouponArgs(c)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

// Update leaves times_used alone; only IncrementUsage moves the counter.
func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons SET
			code = $2, discount_percentage = $3, max_use_times = $4,
			starts_at = $5, expires_at = $6, active = $7, updated_at = $8
		WHERE id = $1`,
		c.ID(), c.Code().String(), c.Percentage().Decimal(), c.MaxUseTimes(),
		c.StartsAt(), c.ExpiresAt(), c.IsActive(), c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	return r.findOne(ctx, `WHERE code = $1`, code)
}

func (r *CouponRepository) findOne(ctx context.Context, where string, arg any) (*coupon.Coupon, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.CouponColumns+` FROM coupons `+where, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.CouponRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return converter.CouponFromRow(row), nil
}

func (r *CouponRepository) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons SET times_used = times_used + 1, updated_at = now()
		WHERE id = $1 AND times_used < max_use_times`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CouponRepository) RecordUsage(ctx context.Context, u shared.UsageRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupon_usages (coupon_id, course_id, user_id, transaction_id, used_at)
		VALUES ($1, $2, $3, $4, $5)`,
		u.InstrumentID, u.CourseID, u.UserID, u.TransactionID, u.UsedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record coupon usage", err)
	}
	return nil
}
