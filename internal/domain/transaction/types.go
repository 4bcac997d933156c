package transaction

import (
	"course-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGateway      = errs.Validation("invalid payment gateway")
	ErrAmountMismatch      = errs.New("checkout price and discounts do not add up to base price")
	ErrMissingProviderRef  = errs.Validation("provider reference is required")
	ErrMissingPaymentRef   = errs.Validation("payment reference is required")
	ErrAlreadyPaid         = errs.Conflict("transaction already paid")
	ErrTransactionNotFound = errs.NotFound("transaction not found")
)

type Gateway string

const (
	GatewayRazorpay Gateway = "razorpay"
	GatewayStripe   Gateway = "stripe"
)

func (g Gateway) IsValid() bool {
	return g == GatewayRazorpay || g == GatewayStripe
}

func (g Gateway) String() string { return string(g) }

// AppliedCoupon snapshots the coupon as it was priced at checkout.
type AppliedCoupon struct {
	ID         uuid.UUID
	Code       string
	Percentage decimal.Decimal
	Amount     decimal.Decimal
}

type AppliedAffiliate struct {
	ID     uuid.UUID
	Code   string
	Amount decimal.Decimal
}

type AppliedCredit struct {
	ID     uuid.UUID
	Amount decimal.Decimal
}
