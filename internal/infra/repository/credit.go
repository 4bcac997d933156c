package repository

import (
	"context"

	"course-checkout/internal/domain/credit"
	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository/converter"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type CreditRepository struct {
	db db.DBTX
}

func NewCreditRepository(db db.DBTX) *CreditRepository {
	return &CreditRepository{db: db}
}

func (r *CreditRepository) Create(ctx context.Context, c *credit.StoredCredit) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO stored_credits (`+converter.CreditColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		converter.CreditArgs(c)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create stored credit", err)
	}
	return nil
}

func (r *CreditRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*credit.StoredCredit, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.CreditColumns+` FROM stored_credits WHERE user_id = $1`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stored credit", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.CreditRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stored credit", err)
	}
	return converter.CreditFromRow(row), nil
}

func (r *CreditRepository) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE stored_credits SET amount = amount - $2, updated_at = now()
		WHERE id = $1 AND amount >= $2`, id, amount)
	if err != nil {
		return false, infra.WrapRepoErr("failed to debit stored credit", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CreditRepository) RecordUsage(ctx context.Context, u shared.UsageRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO credit_usages (credit_id, course_id, user_id, transaction_id, amount, used_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.InstrumentID, u.CourseID, u.UserID, u.TransactionID, u.Amount, u.UsedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record credit usage", err)
	}
	return nil
}
