package readstore

import (
	"context"

	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	transactionViewSelect = `SELECT t.id, t.user_id, u.email AS user_email, t.course_id, c.name AS course_name,
	t.gateway, t.currency, t.base_price, t.checkout_price,
	t.coupon_id, t.coupon_code, t.coupon_amount,
	t.affiliate_code_id, t.affiliate_code, t.affiliate_amount,
	t.credit_id, t.credit_amount,
	t.provider_ref, t.payment_ref, t.is_paid, t.paid_at, t.created_at`

	transactionViewFrom = `FROM transactions t
	JOIN users u ON u.id = t.user_id
	JOIN courses c ON c.id = t.course_id`
)

type TransactionReadStore struct {
	db db.DBTX
}

func NewTransactionReadStore(db db.DBTX) *TransactionReadStore {
	return &TransactionReadStore{db: db}
}

func (r *TransactionReadStore) List(ctx context.Context, p queries.ListParams) ([]*queries.TransactionView, int64, error) {
	lq := listQuery{
		selectSQL: transactionViewSelect,
		fromSQL:   transactionViewFrom,
		idColumn:  "t.id",
	}
	return fetchList[queries.TransactionView](ctx, r.db, lq, p, "transactions")
}

func (r *TransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TransactionView, error) {
	return fetchOne[queries.TransactionView](ctx, r.db,
		transactionViewSelect+" "+transactionViewFrom+" WHERE t.id = $1", "transaction", id)
}
