package manualtransaction

import (
	"strings"
	"time"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingField           = errs.Validation("required field missing")
	ErrInvalidAmount          = errs.Validation("transaction amount must be non-negative with at most 2 decimals")
	ErrInvalidCouponDiscount  = errs.Validation("coupon discount must be non-negative with at most 2 decimals")
	ErrInvalidCurrency        = errs.Validation("transaction currency must be a 3 letter code")
	ErrTransactionNotFound    = errs.NotFound("manual transaction not found")
)

// Transaction is an offline sale booked by an operator. It references the
// buyer and course by name because neither has to exist in the catalog.
type Transaction struct {
	id             uuid.UUID
	userName       string
	userEmail      user.Email
	userPhone      string
	courseName     string
	gateway        string
	providerRef    string
	currency       string
	amount         decimal.Decimal
	transactedAt   time.Time
	remarks        string
	comment        string
	isPaid         bool
	couponCode     *string
	couponDiscount *decimal.Decimal
	createdAt      time.Time
	updatedAt      time.Time
}

type Params struct {
	UserName       string
	UserEmail      string
	UserPhone      string
	CourseName     string
	Gateway        string
	ProviderRef    string
	Currency       string
	Amount         decimal.Decimal
	TransactedAt   time.Time
	Remarks        string
	Comment        string
	IsPaid         bool
	CouponCode     *string
	CouponDiscount *decimal.Decimal
}

func New(p Params, now time.Time) (*Transaction, error) {
	t := &Transaction{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	if err := t.apply(p); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Transaction) Update(p Params, now time.Time) error {
	if err := t.apply(p); err != nil {
		return err
	}
	t.updatedAt = now
	return nil
}

func (t *Transaction) apply(p Params) error {
	required := []struct{ name, value string }{
		{"userName", p.UserName},
		{"userPhoneNumber", p.UserPhone},
		{"courseName", p.CourseName},
		{"paymentGateway", p.Gateway},
		{"transactionId", p.ProviderRef},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return errs.Wrapf(ErrMissingField, "%s", f.name)
		}
	}
	if p.TransactedAt.IsZero() {
		return errs.Wrapf(ErrMissingField, "transactionDate")
	}
	email, err := user.NewEmail(p.UserEmail)
	if err != nil {
		return err
	}
	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if len(currency) != 3 {
		return ErrInvalidCurrency
	}
	if p.Amount.IsNegative() || !money.HasScale(p.Amount) {
		return ErrInvalidAmount
	}
	if d := p.CouponDiscount; d != nil && (d.IsNegative() || !money.HasScale(*d)) {
		return ErrInvalidCouponDiscount
	}

	t.userName = strings.TrimSpace(p.UserName)
	t.userEmail = email
	t.userPhone = strings.TrimSpace(p.UserPhone)
	t.courseName = strings.TrimSpace(p.CourseName)
	t.gateway = strings.TrimSpace(p.Gateway)
	t.providerRef = strings.TrimSpace(p.ProviderRef)
	t.currency = currency
	t.amount = p.Amount
	t.transactedAt = p.TransactedAt
	t.remarks = p.Remarks
	t.comment = p.Comment
	t.isPaid = p.IsPaid
	t.couponCode = normalizeCode(p.CouponCode)
	t.couponDiscount = p.CouponDiscount
	return nil
}

func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	c := strings.ToUpper(strings.TrimSpace(*code))
	if c == "" {
		return nil
	}
	return &c
}

// Params returns the current values, the base for a partial update.
func (t *Transaction) Params() Params {
	return Params{
		UserName:       t.userName,
		UserEmail:      t.userEmail.Value(),
		UserPhone:      t.userPhone,
		CourseName:     t.courseName,
		Gateway:        t.gateway,
		ProviderRef:    t.providerRef,
		Currency:       t.currency,
		Amount:         t.amount,
		TransactedAt:   t.transactedAt,
		Remarks:        t.remarks,
		Comment:        t.comment,
		IsPaid:         t.isPaid,
		CouponCode:     t.couponCode,
		CouponDiscount: t.couponDiscount,
	}
}

type Snapshot struct {
	ID        uuid.UUID
	Params    Params
	CreatedAt time.Time
	UpdatedAt time.Time
}

func Reconstruct(s Snapshot) *Transaction {
	p := s.Params
	return &Transaction{
		id:             s.ID,
		userName:       p.UserName,
		userEmail:      user.ReconstructEmail(p.UserEmail),
		userPhone:      p.UserPhone,
		courseName:     p.CourseName,
		gateway:        p.Gateway,
		providerRef:    p.ProviderRef,
		currency:       p.Currency,
		amount:         p.Amount,
		transactedAt:   p.TransactedAt,
		remarks:        p.Remarks,
		comment:        p.Comment,
		isPaid:         p.IsPaid,
		couponCode:     p.CouponCode,
		couponDiscount: p.CouponDiscount,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (t *Transaction) Snapshot() Snapshot {
	return Snapshot{ID: t.id, Params: t.Params(), CreatedAt: t.createdAt, UpdatedAt: t.updatedAt}
}

func (t *Transaction) ID() uuid.UUID                    { return t.id }
func (t *Transaction) UserName() string                 { return t.userName }
func (t *Transaction) UserEmail() user.Email            { return t.userEmail }
func (t *Transaction) UserPhone() string                { return t.userPhone }
func (t *Transaction) CourseName() string               { return t.courseName }
func (t *Transaction) Gateway() string                  { return t.gateway }
func (t *Transaction) ProviderRef() string              { return t.providerRef }
func (t *Transaction) Currency() string                 { return t.currency }
func (t *Transaction) Amount() decimal.Decimal          { return t.amount }
func (t *Transaction) TransactedAt() time.Time          { return t.transactedAt }
func (t *Transaction) Remarks() string                  { return t.remarks }
func (t *Transaction) Comment() string                  { return t.comment }
func (t *Transaction) IsPaid() bool                     { return t.isPaid }
func (t *Transaction) CouponCode() *string              { return t.couponCode }
func (t *Transaction) CouponDiscount() *decimal.Decimal { return t.couponDiscount }
func (t *Transaction) CreatedAt() time.Time             { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time             { return t.updatedAt }
