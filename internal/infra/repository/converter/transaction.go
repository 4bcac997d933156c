package converter

import (
	"time"

	"course-checkout/internal/domain/transaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const TransactionColumns = `id, user_id, course_id, gateway, currency, base_price, checkout_price,
	coupon_id, coupon_code, coupon_percentage, coupon_amount,
	affiliate_code_id, affiliate_code, affiliate_amount,
	credit_id, credit_amount,
	provider_ref, payment_ref, is_paid, paid_at, created_at, updated_at`

type TransactionRow struct {
	ID               uuid.UUID           `db:"id"`
	UserID           uuid.UUID           `db:"user_id"`
	CourseID         uuid.UUID           `db:"course_id"`
	Gateway          string              `db:"gateway"`
	Currency         string              `db:"currency"`
	BasePrice        decimal.Decimal     `db:"base_price"`
	CheckoutPrice    decimal.Decimal     `db:"checkout_price"`
	CouponID         *uuid.UUID          `db:"coupon_id"`
	CouponCode       *string             `db:"coupon_code"`
	CouponPercentage decimal.NullDecimal `db:"coupon_percentage"`
	CouponAmount     decimal.NullDecimal `db:"coupon_amount"`
	AffiliateCodeID  *uuid.UUID          `db:"affiliate_code_id"`
	AffiliateCode    *string             `db:"affiliate_code"`
	AffiliateAmount  decimal.NullDecimal `db:"affiliate_amount"`
	CreditID         *uuid.UUID          `db:"credit_id"`
	CreditAmount     decimal.NullDecimal `db:"credit_amount"`
	ProviderRef      string              `db:"provider_ref"`
	PaymentRef       *string             `db:"payment_ref"`
	IsPaid           bool                `db:"is_paid"`
	PaidAt           *time.Time          `db:"paid_at"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

func TransactionFromRow(r TransactionRow) *transaction.Transaction {
	s := transaction.Snapshot{
		ID:            r.ID,
		UserID:        r.UserID,
		CourseID:      r.CourseID,
		Gateway:       transaction.Gateway(r.Gateway),
		Currency:      r.Currency,
		BasePrice:     r.BasePrice,
		CheckoutPrice: r.CheckoutPrice,
		ProviderRef:   r.ProviderRef,
		IsPaid:        r.IsPaid,
		PaidAt:        r.PaidAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.PaymentRef != nil {
		s.PaymentRef = *r.PaymentRef
	}
	if r.CouponID != nil {
		s.Coupon = &transaction.AppliedCoupon{
			ID:         *r.CouponID,
			Code:       deref(r.CouponCode),
			Percentage: r.CouponPercentage.Decimal,
			Amount:     r.CouponAmount.Decimal,
		}
	}
	if r.AffiliateCodeID != nil {
		s.Affiliate = &transaction.AppliedAffiliate{
			ID:     *r.AffiliateCodeID,
			Code:   deref(r.AffiliateCode),
			Amount: r.AffiliateAmount.Decimal,
		}
	}
	if r.CreditID != nil {
		s.Credit = &transaction.AppliedCredit{ID: *r.CreditID, Amount: r.CreditAmount.Decimal}
	}
	return transaction.Reconstruct(s)
}

func TransactionArgs(t *transaction.Transaction) []any {
	s := t.Snapshot()

	var (
		couponID, affiliateID, creditID               *uuid.UUID
		couponCode, affiliateCode, paymentRef         *string
		couponPct, couponAmt, affiliateAmt, creditAmt decimal.NullDecimal
	)
	if c := s.Coupon; c != nil {
		couponID, couponCode = &c.ID, &c.Code
		couponPct = decimal.NewNullDecimal(c.Percentage)
		couponAmt = decimal.NewNullDecimal(c.Amount)
	}
	if a := s.Affiliate; a != nil {
		affiliateID, affiliateCode = &a.ID, &a.Code
		affiliateAmt = decimal.NewNullDecimal(a.Amount)
	}
	if c := s.Credit; c != nil {
		creditID = &c.ID
		creditAmt = decimal.NewNullDecimal(c.Amount)
	}
	if s.PaymentRef != "" {
		paymentRef = &s.PaymentRef
	}

	return []any{
		s.ID, s.UserID, s.CourseID, string(s.Gateway), s.Currency, s.BasePrice, s.CheckoutPrice,
		couponID, couponCode, couponPct, couponAmt,
		affiliateID, affiliateCode, affiliateAmt,
		creditID, creditAmt,
		s.ProviderRef, paymentRef, s.IsPaid, s.PaidAt, s.CreatedAt, s.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
