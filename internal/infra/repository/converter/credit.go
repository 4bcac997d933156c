package converter

import (
	"time"

	"course-checkout/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const CreditColumns = `id, user_id, amount, starts_at, expires_at, created_at, updated_at`

type CreditRow struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	StartsAt  time.Time       `db:"starts_at"`
	ExpiresAt time.Time       `db:"expires_at"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func CreditFromRow(r CreditRow) *credit.StoredCredit {
	return credit.Reconstruct(credit.Snapshot(r))
}

func CreditArgs(c *credit.StoredCredit) []any {
	return []any{c.ID(), c.UserID(), c.Amount(), c.StartsAt(), c.ExpiresAt(), c.CreatedAt(), c.UpdatedAt()}
}
