package transaction

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction records one checkout attempt. It is created pending and moves
// to paid exactly once; it is never deleted.
type Transaction struct {
	id            uuid.UUID
	userID        uuid.UUID
	courseID      uuid.UUID
	gateway       Gateway
	currency      string
	basePrice     decimal.Decimal
	checkoutPrice decimal.Decimal
	coupon        *AppliedCoupon
	affiliate     *AppliedAffiliate
	credit        *AppliedCredit
	providerRef   string
	paymentRef    string
	isPaid        bool
	paidAt        *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

type PendingParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CourseID      uuid.UUID
	Gateway       Gateway
	Currency      string
	BasePrice     decimal.Decimal
	CheckoutPrice decimal.Decimal
	Coupon        *AppliedCoupon
	Affiliate     *AppliedAffiliate
	Credit        *AppliedCredit
	ProviderRef   string
}

// NewPending builds an unpaid transaction. The recorded discounts together
// with the checkout price must add up to the base price.
func NewPending(p PendingParams, now time.Time) (*Transaction, error) {
	if !p.Gateway.IsValid() {
		return nil, ErrInvalidGateway
	}
	ref := strings.TrimSpace(p.ProviderRef)
	if ref == "" {
		return nil, ErrMissingProviderRef
	}

	sum := p.CheckoutPrice
	if p.Coupon != nil {
		sum = sum.Add(p.Coupon.Amount)
	}
	if p.Affiliate != nil {
		sum = sum.Add(p.Affiliate.Amount)
	}
	if p.Credit != nil {
		sum = sum.Add(p.Credit.Amount)
	}
	if !sum.Equal(p.BasePrice) {
		return nil, ErrAmountMismatch
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Transaction{
		id:            id,
		userID:        p.UserID,
		courseID:      p.CourseID,
		gateway:       p.Gateway,
		currency:      p.Currency,
		basePrice:     p.BasePrice,
		checkoutPrice: p.CheckoutPrice,
		coupon:        p.Coupon,
		affiliate:     p.Affiliate,
		credit:        p.Credit,
		providerRef:   ref,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func (t *Transaction) MarkPaid(paymentRef string, now time.Time) error {
	if t.isPaid {
		return ErrAlreadyPaid
	}
	paymentRef = strings.TrimSpace(paymentRef)
	if paymentRef == "" {
		return ErrMissingPaymentRef
	}
	t.isPaid = true
	t.paymentRef = paymentRef
	t.paidAt = &now
	t.updatedAt = now
	return nil
}

type Snapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CourseID      uuid.UUID
	Gateway       Gateway
	Currency      string
	BasePrice     decimal.Decimal
	CheckoutPrice decimal.Decimal
	Coupon        *AppliedCoupon
	Affiliate     *AppliedAffiliate
	Credit        *AppliedCredit
	ProviderRef   string
	PaymentRef    string
	IsPaid        bool
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(s Snapshot) *Transaction {
	return &Transaction{
		id:            s.ID,
		userID:        s.UserID,
		courseID:      s.CourseID,
		gateway:       s.Gateway,
		currency:      s.Currency,
		basePrice:     s.BasePrice,
		checkoutPrice: s.CheckoutPrice,
		coupon:        s.Coupon,
		affiliate:     s.Affiliate,
		credit:        s.Credit,
		providerRef:   s.ProviderRef,
		paymentRef:    s.PaymentRef,
		isPaid:        s.IsPaid,
		paidAt:        s.PaidAt,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (t *Transaction) Snapshot() Snapshot {
	return Snapshot{
		ID:            t.id,
		UserID:        t.userID,
		CourseID:      t.courseID,
		Gateway:       t.gateway,
		Currency:      t.currency,
		BasePrice:     t.basePrice,
		CheckoutPrice: t.checkoutPrice,
		Coupon:        t.coupon,
		Affiliate:     t.affiliate,
		Credit:        t.credit,
		ProviderRef:   t.providerRef,
		PaymentRef:    t.paymentRef,
		IsPaid:        t.isPaid,
		PaidAt:        t.paidAt,
		CreatedAt:     t.createdAt,
		UpdatedAt:     t.updatedAt,
	}
}

func (t *Transaction) ID() uuid.UUID                  { return t.id }
func (t *Transaction) UserID() uuid.UUID              { return t.userID }
func (t *Transaction) CourseID() uuid.UUID            { return t.courseID }
func (t *Transaction) Gateway() Gateway               { return t.gateway }
func (t *Transaction) Currency() string               { return t.currency }
func (t *Transaction) BasePrice() decimal.Decimal     { return t.basePrice }
func (t *Transaction) CheckoutPrice() decimal.Decimal { return t.checkoutPrice }
func (t *Transaction) Coupon() *AppliedCoupon         { return t.coupon }
func (t *Transaction) Affiliate() *AppliedAffiliate   { return t.affiliate }
func (t *Transaction) Credit() *AppliedCredit         { return t.credit }
func (t *Transaction) ProviderRef() string            { return t.providerRef }
func (t *Transaction) PaymentRef() string             { return t.paymentRef }
func (t *Transaction) IsPaid() bool                   { return t.isPaid }
func (t *Transaction) PaidAt() *time.Time             { return t.paidAt }
func (t *Transaction) CreatedAt() time.Time           { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time           { return t.updatedAt }
