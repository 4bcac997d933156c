package commands

import (
	"context"
	"log/slog"
	"time"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/checkout"
	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/domain/course"
	"course-checkout/internal/domain/credit"
	"course-checkout/internal/domain/transaction"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/money"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyEnrolled = errs.Conflict("user is already enrolled in this course")
	ErrGatewayFailure  = errs.New("payment gateway request failed")
)

type CheckoutSettings struct {
	Currency       string
	MinorUnitValue int64
	GatewayTimeout time.Duration
}

type CheckoutRequest struct {
	UserID        uuid.UUID
	CourseID      uuid.UUID
	CouponCode    string
	AffiliateCode string
	CreditAmount  decimal.Decimal
}

type RazorpayCheckoutResult struct {
	TransactionID uuid.UUID
	Order         shared.Order
	CheckoutPrice decimal.Decimal
}

type StripeCheckoutResult struct {
	TransactionID uuid.UUID
	SessionID     string
	URL           string
	CheckoutPrice decimal.Decimal
}

type CheckoutCommands interface {
	StartRazorpay(ctx context.Context, req CheckoutRequest) (*RazorpayCheckoutResult, error)
	StartStripe(ctx context.Context, req CheckoutRequest) (*StripeCheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow      shared.UnitOfWork
	resolver *checkout.Resolver
	orders   shared.OrderGateway
	sessions shared.SessionGateway
	settings CheckoutSettings
	clock    clock.Clock
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	resolver *checkout.Resolver,
	orders shared.OrderGateway,
	sessions shared.SessionGateway,
	settings CheckoutSettings,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:      uow,
		resolver: resolver,
		orders:   orders,
		sessions: sessions,
		settings: settings,
		clock:    clk,
	}
}

type pricedCheckout struct {
	course      *course.Course
	quote       *checkout.Quote
	amountMinor int64
}

func (uc *checkoutCommandsImpl) StartRazorpay(ctx context.Context, req CheckoutRequest) (*RazorpayCheckoutResult, error) {
	priced, err := uc.price(ctx, req)
	if err != nil {
		return nil, err
	}

	txID := uuid.New()
	gctx, cancel := uc.gatewayContext(ctx)
	defer cancel()
	order, err := uc.orders.CreateOrder(gctx, shared.OrderRequest{
		AmountMinor: priced.amountMinor,
		Currency:    uc.settings.Currency,
		Receipt:     txID.String(),
	})
	if err != nil {
		slog.Error("razorpay order creation failed", "transaction_id", txID, "error", err)
		return nil, errs.Mark(err, ErrGatewayFailure)
	}

	if err := uc.persistPending(ctx, txID, req, priced, transaction.GatewayRazorpay, order.ID); err != nil {
		return nil, err
	}

	return &RazorpayCheckoutResult{
		TransactionID: txID,
		Order:         *order,
		CheckoutPrice: priced.quote.CheckoutPrice,
	}, nil
}

func (uc *checkoutCommandsImpl) StartStripe(ctx context.Context, req CheckoutRequest) (*StripeCheckoutResult, error) {
	priced, err := uc.price(ctx, req)
	if err != nil {
		return nil, err
	}

	buyer, err := uc.uow.CommandReads().UserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	txID := uuid.New()
	sreq := shared.SessionRequest{
		TransactionID: txID,
		CourseName:    priced.course.Name(),
		AmountMinor:   priced.amountMinor,
		Currency:      uc.settings.Currency,
		CustomerEmail: buyer.Email().Value(),
	}
	// The registered Stripe price is the list price; any course discount or
	// instrument moves the amount due off it.
	if priced.course.StripePriceID() != "" && priced.course.ListPrice().Equal(priced.quote.CheckoutPrice) {
		sreq.PriceID = priced.course.StripePriceID()
	}

	gctx, cancel := uc.gatewayContext(ctx)
	defer cancel()
	session, err := uc.sessions.CreateSession(gctx, sreq)
	if err != nil {
		slog.Error("stripe session creation failed", "transaction_id", txID, "error", err)
		return nil, errs.Mark(err, ErrGatewayFailure)
	}

	if err := uc.persistPending(ctx, txID, req, priced, transaction.GatewayStripe, session.ID); err != nil {
		return nil, err
	}

	return &StripeCheckoutResult{
		TransactionID: txID,
		SessionID:     session.ID,
		URL:           session.URL,
		CheckoutPrice: priced.quote.CheckoutPrice,
	}, nil
}

func (uc *checkoutCommandsImpl) price(ctx context.Context, req CheckoutRequest) (*pricedCheckout, error) {
	reads := uc.uow.CommandReads()

	c, err := reads.CourseByID(ctx, req.CourseID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, course.ErrCourseNotFound
		}
		return nil, err
	}
	if err := c.CheckPurchasable(); err != nil {
		return nil, err
	}

	enrolled, err := reads.IsEnrolled(ctx, req.UserID, req.CourseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, ErrAlreadyEnrolled
	}

	in := checkout.Input{
		Price:           c.Price(),
		CouponCode:      coupon.NormalizeCode(req.CouponCode),
		AffiliateCode:   coupon.NormalizeCode(req.AffiliateCode),
		CreditRequested: req.CreditAmount,
	}
	if in.CouponCode != "" {
		if in.Coupon, err = lookup[*coupon.Coupon](ctx, in.CouponCode, reads.CouponByCode); err != nil {
			return nil, err
		}
	}
	if in.AffiliateCode != "" {
		if in.Affiliate, err = lookup[*affiliate.Code](ctx, in.AffiliateCode, reads.AffiliateByCode); err != nil {
			return nil, err
		}
	}
	if in.CreditRequested.IsPositive() {
		if in.Credit, err = lookup[*credit.StoredCredit](ctx, req.UserID, reads.CreditByUserID); err != nil {
			return nil, err
		}
	}

	quote, err := uc.resolver.Resolve(in, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	amountMinor, err := money.ToMinorUnits(quote.CheckoutPrice, uc.settings.MinorUnitValue)
	if err != nil {
		return nil, err
	}

	return &pricedCheckout{course: c, quote: quote, amountMinor: amountMinor}, nil
}

// lookup maps a not-found result to a nil record so the resolver reports the
// instrument-specific error.
func lookup[T any, K any](ctx context.Context, key K, find func(context.Context, K) (T, error)) (T, error) {
	var zero T
	v, err := find(ctx, key)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return zero, nil
		}
		return zero, err
	}
	return v, nil
}

func (uc *checkoutCommandsImpl) persistPending(ctx context.Context, txID uuid.UUID, req CheckoutRequest, priced *pricedCheckout, gw transaction.Gateway, providerRef string) error {
	t, err := transaction.NewPending(transaction.PendingParams{
		ID:            txID,
		UserID:        req.UserID,
		CourseID:      req.CourseID,
		Gateway:       gw,
		Currency:      uc.settings.Currency,
		BasePrice:     priced.quote.BasePrice,
		CheckoutPrice: priced.quote.CheckoutPrice,
		Coupon:        priced.quote.Coupon,
		Affiliate:     priced.quote.Affiliate,
		Credit:        priced.quote.Credit,
		ProviderRef:   providerRef,
	}, uc.clock.Now())
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Transactions().Create(ctx, t)
	})
}

func (uc *checkoutCommandsImpl) gatewayContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.settings.GatewayTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.settings.GatewayTimeout)
}
