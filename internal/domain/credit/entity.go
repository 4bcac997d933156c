package credit

import (
	"time"

	"course-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGrantAmount = errs.Validation("credit grant amount must be positive")
	ErrInvalidValidity    = errs.Validation("credit validity must be positive")
)

// StoredCredit is a per-user expiring balance. The balance only decreases
// through settlement once it has been granted.
type StoredCredit struct {
	id        uuid.UUID
	userID    uuid.UUID
	amount    decimal.Decimal
	startsAt  time.Time
	expiresAt time.Time
	createdAt time.Time
	updatedAt time.Time
}

func Grant(userID uuid.UUID, amount decimal.Decimal, validity time.Duration, now time.Time) (*StoredCredit, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidGrantAmount
	}
	if validity <= 0 {
		return nil, ErrInvalidValidity
	}
	return &StoredCredit{
		id:        uuid.New(),
		userID:    userID,
		amount:    amount,
		startsAt:  now,
		expiresAt: now.Add(validity),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (c *StoredCredit) IsExpiredAt(now time.Time) bool {
	return c.expiresAt.Before(now)
}

type Snapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal
	StartsAt  time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func Reconstruct(s Snapshot) *StoredCredit {
	return &StoredCredit{
		id:        s.ID,
		userID:    s.UserID,
		amount:    s.Amount,
		startsAt:  s.StartsAt,
		expiresAt: s.ExpiresAt,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}

func (c *StoredCredit) ID() uuid.UUID           { return c.id }
func (c *StoredCredit) UserID() uuid.UUID       { return c.userID }
func (c *StoredCredit) Amount() decimal.Decimal { return c.amount }
func (c *StoredCredit) StartsAt() time.Time     { return c.startsAt }
func (c *StoredCredit) ExpiresAt() time.Time    { return c.expiresAt }
func (c *StoredCredit) CreatedAt() time.Time    { return c.createdAt }
func (c *StoredCredit) UpdatedAt() time.Time    { return c.updatedAt }
