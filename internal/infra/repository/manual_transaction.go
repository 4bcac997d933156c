package repository

import (
	"context"

	"course-checkout/internal/domain/manualtransaction"
	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ManualTransactionRepository struct {
	db db.DBTX
}

func NewManualTransactionRepository(db db.DBTX) *ManualTransactionRepository {
	return &ManualTransactionRepository{db: db}
}

func (r *ManualTransactionRepository) Create(ctx context.Context, t *manualtransaction.Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO manual_transactions (`+converter.ManualTransactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		converter.ManualTransactionArgs(t)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create manual transaction", err)
	}
	return nil
}

func (r *ManualTransactionRepository) Update(ctx context.Context, t *manualtransaction.Transaction) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE manual_transactions SET
			user_name = $2, user_email = $3, user_phone = $4, course_name = $5, gateway = $6,
			provider_ref = $7, currency = $8, amount = $9, transacted_at = $10, remarks = $11,
			comment = $12, is_paid = $13, coupon_code = $14, coupon_discount = $15, updated_at = $16
		WHERE id = $1`,
		t.ID(), t.UserName(), t.UserEmail().Value(), t.UserPhone(), t.CourseName(), t.Gateway(),
		t.ProviderRef(), t.Currency(), t.Amount(), t.TransactedAt(), t.Remarks(), t.Comment(), t.IsPaid(),
		t.CouponCode(), t.CouponDiscount(), t.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update manual transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("manual transaction not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ManualTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*manualtransaction.Transaction, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.ManualTransactionColumns+` FROM manual_transactions WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find manual transaction", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.ManualTransactionRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find manual transaction", err)
	}
	return converter.ManualTransactionFromRow(row), nil
}

// Delete removes the row. Manual bookings carry no usage history to preserve.
func (r *ManualTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM manual_transactions WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete manual transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("manual transaction not found", nil, infra.KindNotFound)
	}
	return nil
}
