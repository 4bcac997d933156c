package readstore

import (
	"context"

	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

const creditViewSelect = `SELECT id, user_id, amount, starts_at, expires_at, created_at FROM stored_credits`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	return fetchOne[queries.UserView](ctx, r.db, `
		SELECT id, name, email, role, verified, credit_id, affiliate_code_id, active, created_at
		FROM users WHERE id = $1`, "user", id)
}

type CreditReadStore struct {
	db db.DBTX
}

func NewCreditReadStore(db db.DBTX) *CreditReadStore {
	return &CreditReadStore{db: db}
}

func (r *CreditReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CreditView, error) {
	return fetchOne[queries.CreditView](ctx, r.db, creditViewSelect+` WHERE id = $1`, "stored credit", id)
}

func (r *CreditReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.CreditView, error) {
	return fetchOne[queries.CreditView](ctx, r.db, creditViewSelect+` WHERE user_id = $1`, "stored credit", userID)
}
