package request

import (
	"time"

	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/commands"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CreateManualTransactionRequest struct {
	UserName       string           `json:"userName" binding:"required,max=200"`
	UserEmail      string           `json:"userEmail" binding:"required,email"`
	UserPhone      string           `json:"userPhoneNumber" binding:"required,max=32"`
	CourseName     string           `json:"courseName" binding:"required,max=200"`
	Gateway        string           `json:"paymentGateway" binding:"required,max=64"`
	ProviderRef    string           `json:"transactionId" binding:"required,max=128"`
	Currency       string           `json:"transactionCurrency" binding:"required,len=3"`
	Amount         decimal.Decimal  `json:"transactionAmount"`
	TransactedAt   time.Time        `json:"transactionDate" binding:"required"`
	Remarks        string           `json:"transactionRemarks" binding:"max=2000"`
	Comment        string           `json:"comment" binding:"max=2000"`
	IsPaid         bool             `json:"isPaid"`
	CouponCode     *string          `json:"couponCode" binding:"omitempty,max=64"`
	CouponDiscount *decimal.Decimal `json:"couponDiscount"`
}

func (r *CreateManualTransactionRequest) ToCommand() commands.ManualTransactionInput {
	return commands.ManualTransactionInput{
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
	}
}

type UpdateManualTransactionRequest struct {
	UserName       *string          `json:"userName" binding:"omitempty,min=1,max=200"`
	UserEmail      *string          `json:"userEmail" binding:"omitempty,email"`
	UserPhone      *string          `json:"userPhoneNumber" binding:"omitempty,min=1,max=32"`
	CourseName     *string          `json:"courseName" binding:"omitempty,min=1,max=200"`
	Gateway        *string          `json:"paymentGateway" binding:"omitempty,min=1,max=64"`
	ProviderRef    *string          `json:"transactionId" binding:"omitempty,min=1,max=128"`
	Currency       *string          `json:"transactionCurrency" binding:"omitempty,len=3"`
	Amount         *decimal.Decimal `json:"transactionAmount"`
	TransactedAt   *time.Time       `json:"transactionDate"`
	Remarks        *string          `json:"transactionRemarks" binding:"omitempty,max=2000"`
	Comment        *string          `json:"comment" binding:"omitempty,max=2000"`
	IsPaid         *bool            `json:"isPaid"`
	CouponCode     *string          `json:"couponCode" binding:"omitempty,max=64"`
	CouponDiscount *decimal.Decimal `json:"couponDiscount"`
}

func (r *UpdateManualTransactionRequest) ToCommand() (commands.ManualTransactionPatch, error) {
	var p commands.ManualTransactionPatch
	if err := copier.Copy(&p, r); err != nil {
		return commands.ManualTransactionPatch{}, errs.Wrap(err, "map manual transaction patch")
	}
	return p, nil
}
