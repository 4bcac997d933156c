package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UsageRecord links a redeemed instrument to the purchase that consumed it.
type UsageRecord struct {
	InstrumentID  uuid.UUID
	UserID        uuid.UUID
	CourseID      uuid.UUID
	TransactionID uuid.UUID
	Amount        decimal.Decimal
	UsedAt        time.Time
}

// RateTable maps currency codes to their rate against Base.
type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetched_at"`
}
