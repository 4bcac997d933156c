package readstore

import (
	"context"

	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

const manualTransactionViewSelect = `SELECT id, user_name, user_email, user_phone, course_name, gateway,
	provider_ref, currency, amount, transacted_at, remarks, comment, is_paid,
	coupon_code, coupon_discount, created_at, updated_at`

type ManualTransactionReadStore struct {
	db db.DBTX
}

func NewManualTransactionReadStore(db db.DBTX) *ManualTransactionReadStore {
	return &ManualTransactionReadStore{db: db}
}

func (r *ManualTransactionReadStore) List(ctx context.Context, p queries.ListParams) ([]*queries.ManualTransactionView, int64, error) {
	lq := listQuery{selectSQL: manualTransactionViewSelect, fromSQL: "FROM manual_transactions", idColumn: "id"}
	return fetchList[queries.ManualTransactionView](ctx, r.db, lq, p, "manual transactions")
}

func (r *ManualTransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ManualTransactionView, error) {
	return fetchOne[queries.ManualTransactionView](ctx, r.db,
		manualTransactionViewSelect+` FROM manual_transactions WHERE id = $1`, "manual transaction", id)
}
