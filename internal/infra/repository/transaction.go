package repository

import (
	"context"
	"time"

	"course-checkout/internal/domain/transaction"
	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository/converter"
	"course-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(db db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (`+converter.TransactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		converter.TransactionArgs(t)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

// FindByProviderRef locks the row so concurrent settlements of the same
// payment queue behind each other.
func (r *TransactionRepository) FindByProviderRef(ctx context.Context, gateway transaction.Gateway, ref string) (*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+converter.TransactionColumns+`
		FROM transactions
		WHERE gateway = $1 AND provider_ref = $2
		FOR UPDATE`,
		string(gateway), ref)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find transaction", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.TransactionRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find transaction", err)
	}
	return converter.TransactionFromRow(row), nil
}

func (r *TransactionRepository) MarkPaid(ctx context.Context, id uuid.UUID, paymentRef string, paidAt time.Time) (*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE transactions
		SET is_paid = TRUE, payment_ref = $2, paid_at = $3, updated_at = $3
		WHERE id = $1 AND NOT is_paid
		RETURNING `+converter.TransactionColumns,
		id, paymentRef, paidAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to mark transaction paid", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.TransactionRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to mark transaction paid", err)
	}
	return converter.TransactionFromRow(row), nil
}
