package converter

import (
	"time"

	"course-checkout/internal/domain/manualtransaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const ManualTransactionColumns = `id, user_name, user_email, user_phone, course_name, gateway,
	provider_ref, currency, amount, transacted_at, remarks, comment, is_paid,
	coupon_code, coupon_discount, created_at, updated_at`

type ManualTransactionRow struct {
	ID             uuid.UUID        `db:"id"`
	UserName       string           `db:"user_name"`
	UserEmail      string           `db:"user_email"`
	UserPhone      string           `db:"user_phone"`
	CourseName     string           `db:"course_name"`
	Gateway        string           `db:"gateway"`
	ProviderRef    string           `db:"provider_ref"`
	Currency       string           `db:"currency"`
	Amount         decimal.Decimal  `db:"amount"`
	TransactedAt   time.Time        `db:"transacted_at"`
	Remarks        string           `db:"remarks"`
	Comment        string           `db:"comment"`
	IsPaid         bool             `db:"is_paid"`
	CouponCode     *string          `db:"coupon_code"`
	CouponDiscount *decimal.Decimal `db:"coupon_discount"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`
}

func ManualTransactionFromRow(r ManualTransactionRow) *manualtransaction.Transaction {
	return manualtransaction.Reconstruct(manualtransaction.Snapshot{
		ID: r.ID,
		Params: manualtransaction.Params{
			UserName:       r.UserName,
			UserEmail:      r.UserEmail,
			UserPhone:      r.UserPhone,
			CourseName:     r.CourseName,
			Gateway:        r.Gateway,
			ProviderRef:    r.ProviderRef,
			Currency:       r.Currency,
			Amount:         r.Amount,
			TransactedAt:   r.TransactedAt,
			Remarks:        r.Remarks,
			Comment:        r.Comment,
			IsPaid:         r.IsPaid,
			CouponCode:     r.CouponCode,
			CouponDiscount: r.CouponDiscount,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	})
}

func ManualTransactionArgs(t *manualtransaction.Transaction) []any {
	return []any{
		t.ID(), t.UserName(), t.UserEmail().Value(), t.UserPhone(), t.CourseName(), t.Gateway(),
		t.ProviderRef(), t.Currency(), t.Amount(), t.TransactedAt(), t.Remarks(), t.Comment(), t.IsPaid(),
		t.CouponCode(), t.CouponDiscount(), t.CreatedAt(), t.UpdatedAt(),
	}
}
