package repository

import (
	"context"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository/converter"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AffiliateRepository struct {
	db db.DBTX
}

func NewAffiliateRepository(db db.DBTX) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

func (r *AffiliateRepository) Create(ctx context.Context, a *affiliate.Code) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO affiliate_codes (`+converter.AffiliateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		converter.AffiliateArgs(a)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create affiliate code", err)
	}
	return nil
}

func (r *AffiliateRepository) Update(ctx context.Context, a *affiliate.Code) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE affiliate_codes SET
			code = $2, discount_amount = $3, max_use_times = $4,
			starts_at = $5, expires_at = $6, owner_id = $7, active = $8, updated_at = $9
		WHERE id = $1`,
		a.ID(), a.Code().String(), a.DiscountAmount(), a.MaxUseTimes(),
		a.StartsAt(), a.ExpiresAt(), a.OwnerID(), a.IsActive(), a.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update affiliate code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("affiliate code not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AffiliateRepository) FindByID(ctx context.Context, id uuid.UUID) (*affiliate.Code, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *AffiliateRepository) FindByCode(ctx context.Context, code string) (*affiliate.Code, error) {
	return r.findOne(ctx, `WHERE code = $1`, code)
}

func (r *AffiliateRepository) findOne(ctx context.Context, where string, arg any) (*affiliate.Code, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.AffiliateColumns+` FROM affiliate_codes `+where, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find affiliate code", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.AffiliateRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find affiliate code", err)
	}
	return converter.AffiliateFromRow(row), nil
}

func (r *AffiliateRepository) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE affiliate_codes SET times_used = times_used + 1, updated_at = now()
		WHERE id = $1 AND times_used < max_use_times`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment affiliate usage", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AffiliateRepository) RecordUsage(ctx context.Context, u shared.UsageRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO affiliate_usages (affiliate_code_id, course_id, user_id, transaction_id, used_at)
		VALUES ($1, $2, $3, $4, $5)`,
		u.InstrumentID, u.CourseID, u.UserID, u.TransactionID, u.UsedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record affiliate usage", err)
	}
	return nil
}
