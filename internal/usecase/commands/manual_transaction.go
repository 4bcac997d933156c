package commands

import (
	"context"
	"time"

	"course-checkout/internal/domain/manualtransaction"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/patch"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ManualTransactionInput struct {
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

type ManualTransactionPatch struct {
	UserName       *string
	UserEmail      *string
	UserPhone      *string
	CourseName     *string
	Gateway        *string
	ProviderRef    *string
	Currency       *string
	Amount         *decimal.Decimal
	TransactedAt   *time.Time
	Remarks        *string
	Comment        *string
	IsPaid         *bool
	CouponCode     *string
	CouponDiscount *decimal.Decimal
}

type ManualTransactionCommands interface {
	Create(ctx context.Context, in ManualTransactionInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p ManualTransactionPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type manualTransactionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewManualTransactionCommands(uow shared.UnitOfWork, clk clock.Clock) ManualTransactionCommands {
	return &manualTransactionCommandsImpl{uow: uow, clock: clk}
}

func (uc *manualTransactionCommandsImpl) Create(ctx context.Context, in ManualTransactionInput) (uuid.UUID, error) {
	t, err := manualtransaction.New(manualtransaction.Params(in), uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ManualTransactions().Create(ctx, t)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return t.ID(), nil
}

func (uc *manualTransactionCommandsImpl) Update(ctx context.Context, id uuid.UUID, p ManualTransactionPatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.ManualTransactions().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, manualtransaction.ErrTransactionNotFound)
		}
		cur := t.Params()
		err = t.Update(manualtransaction.Params{
			UserName:       patch.Coalesce(p.UserName, cur.UserName),
			UserEmail:      patch.Coalesce(p.UserEmail, cur.UserEmail),
			UserPhone:      patch.Coalesce(p.UserPhone, cur.UserPhone),
			CourseName:     patch.Coalesce(p.CourseName, cur.CourseName),
			Gateway:        patch.Coalesce(p.Gateway, cur.Gateway),
			ProviderRef:    patch.Coalesce(p.ProviderRef, cur.ProviderRef),
			Currency:       patch.Coalesce(p.Currency, cur.Currency),
			Amount:         patch.Coalesce(p.Amount, cur.Amount),
			TransactedAt:   patch.Coalesce(p.TransactedAt, cur.TransactedAt),
			Remarks:        patch.Coalesce(p.Remarks, cur.Remarks),
			Comment:        patch.Coalesce(p.Comment, cur.Comment),
			IsPaid:         patch.Coalesce(p.IsPaid, cur.IsPaid),
			CouponCode:     patch.CoalescePtr(p.CouponCode, cur.CouponCode),
			CouponDiscount: patch.CoalescePtr(p.CouponDiscount, cur.CouponDiscount),
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.ManualTransactions().Update(ctx, t)
	})
}

func (uc *manualTransactionCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.ManualTransactions().Delete(ctx, id), manualtransaction.ErrTransactionNotFound)
	})
}
