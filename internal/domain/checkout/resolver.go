package checkout

import (
	"time"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/domain/credit"
	"course-checkout/internal/domain/transaction"
	"course-checkout/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Input is the state read for one checkout attempt. A code that was supplied
// but not found is passed with a nil record.
type Input struct {
	Price decimal.Decimal

	CouponCode string
	Coupon     *coupon.Coupon

	AffiliateCode string
	Affiliate     *affiliate.Code

	// CreditRequested is zero when no stored credit is requested.
	CreditRequested decimal.Decimal
	Credit          *credit.StoredCredit
}

type Quote struct {
	BasePrice     decimal.Decimal
	CheckoutPrice decimal.Decimal
	Coupon        *transaction.AppliedCoupon
	Affiliate     *transaction.AppliedAffiliate
	Credit        *transaction.AppliedCredit
}

// Discounts returns the sum of every applied instrument amount.
func (q *Quote) Discounts() decimal.Decimal {
	total := decimal.Zero
	if q.Coupon != nil {
		total = total.Add(q.Coupon.Amount)
	}
	if q.Affiliate != nil {
		total = total.Add(q.Affiliate.Amount)
	}
	if q.Credit != nil {
		total = total.Add(q.Credit.Amount)
	}
	return total
}

type Resolver struct {
	policy           WindowPolicy
	creditCapPercent decimal.Decimal
}

func NewResolver(policy WindowPolicy, creditCapPercent decimal.Decimal) *Resolver {
	return &Resolver{policy: policy, creditCapPercent: creditCapPercent}
}

func (r *Resolver) Policy() WindowPolicy { return r.policy }

// Resolve applies coupon, affiliate code and stored credit in that order and
// fails on the first instrument that does not apply. It reads and mutates
// nothing.
func (r *Resolver) Resolve(in Input, now time.Time) (*Quote, error) {
	q := &Quote{
		BasePrice:     in.Price,
		CheckoutPrice: in.Price,
	}

	if in.CouponCode != "" {
		c := in.Coupon
		if c == nil || !c.IsActive() {
			return nil, ErrInvalidCoupon
		}
		if r.policy.Outside(c.StartsAt(), c.ExpiresAt(), now) {
			return nil, ErrCouponExpired
		}
		if c.IsExhausted() {
			return nil, ErrCouponExhausted
		}
		amount := c.DiscountOn(q.CheckoutPrice)
		q.CheckoutPrice = q.CheckoutPrice.Sub(amount)
		q.Coupon = &transaction.AppliedCoupon{
			ID:         c.ID(),
			Code:       c.Code().String(),
			Percentage: c.Percentage().Decimal(),
			Amount:     amount,
		}
	}

	if in.AffiliateCode != "" {
		a := in.Affiliate
		if a == nil || !a.IsActive() {
			return nil, ErrInvalidAffiliateCode
		}
		if r.policy.Outside(a.StartsAt(), a.ExpiresAt(), now) {
			return nil, ErrAffiliateCodeExpired
		}
		if a.IsExhausted() {
			return nil, ErrAffiliateCodeExhausted
		}
		q.CheckoutPrice = q.CheckoutPrice.Sub(a.DiscountAmount())
		q.Affiliate = &transaction.AppliedAffiliate{
			ID:     a.ID(),
			Code:   a.Code().String(),
			Amount: a.DiscountAmount(),
		}
	}

	if in.CreditRequested.IsNegative() || !money.HasScale(in.CreditRequested) {
		return nil, ErrInvalidCreditAmount
	}
	if in.CreditRequested.IsPositive() {
		sc := in.Credit
		if sc == nil {
			return nil, ErrCreditNotFound
		}
		if sc.IsExpiredAt(now) {
			return nil, ErrCreditExpired
		}
		// The cap is taken from the base price, not the running price.
		limit := in.Price.Mul(r.creditCapPercent).Div(hundred)
		if in.CreditRequested.GreaterThan(sc.Amount()) || in.CreditRequested.GreaterThan(limit) {
			return nil, ErrInvalidCreditAmount
		}
		q.CheckoutPrice = q.CheckoutPrice.Sub(in.CreditRequested)
		q.Credit = &transaction.AppliedCredit{
			ID:     sc.ID(),
			Amount: in.CreditRequested,
		}
	}

	if !q.CheckoutPrice.IsPositive() {
		return nil, ErrInvalidCheckoutPrice
	}
	return q, nil
}
