package commands

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"course-checkout/internal/domain/transaction"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSignature    = errs.Validation("Payment Failed Invalid Signature")
	ErrWebhookVerification = errs.Validation("Webhook signature verification failed")
	ErrCounterCapReached   = errs.New("usage counter already at cap")
	ErrInsufficientCredit  = errs.New("stored credit balance below debit amount")
)

const eventCheckoutSessionCompleted = "checkout.session.completed"

type MailSettings struct {
	OperatorAddr string
	TeamName     string
}

type SettlementResult struct {
	TransactionID uuid.UUID
	PaymentRef    string
	// AlreadySettled is true when the transaction was paid by an earlier delivery.
	AlreadySettled bool
}

type WebhookResult struct {
	EventType  string
	Settlement *SettlementResult
}

type SettlementCommands interface {
	VerifyRazorpay(ctx context.Context, orderID, paymentID, signature string) (*SettlementResult, error)
	HandleStripeWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error)
}

type settlementCommandsImpl struct {
	uow      shared.UnitOfWork
	orders   shared.OrderGateway
	sessions shared.SessionGateway
	mailer   shared.Mailer
	mail     MailSettings
	clock    clock.Clock
}

func NewSettlementCommands(
	uow shared.UnitOfWork,
	orders shared.OrderGateway,
	sessions shared.SessionGateway,
	mailer shared.Mailer,
	mail MailSettings,
	clk clock.Clock,
) SettlementCommands {
	return &settlementCommandsImpl{
		uow:      uow,
		orders:   orders,
		sessions: sessions,
		mailer:   mailer,
		mail:     mail,
		clock:    clk,
	}
}

func (uc *settlementCommandsImpl) VerifyRazorpay(ctx context.Context, orderID, paymentID, signature string) (*SettlementResult, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, ErrInvalidSignature
	}
	if !uc.orders.VerifySignature(orderID, paymentID, signature) {
		slog.Warn("razorpay signature mismatch", "order_id", orderID, "payment_id", paymentID)
		return nil, ErrInvalidSignature
	}
	return uc.settle(ctx, transaction.GatewayRazorpay, orderID, paymentID)
}

func (uc *settlementCommandsImpl) HandleStripeWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error) {
	event, err := uc.sessions.ParseWebhook(payload, signatureHeader)
	if err != nil {
		slog.Warn("stripe webhook rejected", "error", err)
		return nil, errs.Mark(err, ErrWebhookVerification)
	}

	result := &WebhookResult{EventType: event.Type}
	if event.Type != eventCheckoutSessionCompleted || event.Completed == nil {
		slog.Info("stripe webhook acknowledged", "event_id", event.ID, "type", event.Type)
		return result, nil
	}

	paymentRef := event.Completed.PaymentIntentID
	if paymentRef == "" {
		paymentRef = event.Completed.SessionID
	}
	settlement, err := uc.settle(ctx, transaction.GatewayStripe, event.Completed.SessionID, paymentRef)
	if err != nil {
		return nil, err
	}
	result.Settlement = settlement
	return result, nil
}

type purchaseNotice struct {
	buyerName  string
	buyerEmail string
	courseName string
	amount     string
	currency   string
	paymentRef string
}

// settle marks the transaction paid and applies the downstream effects in the
// same database transaction. Each effect runs in its own savepoint; a failing
// effect is logged and skipped so the payment is still recorded.
func (uc *settlementCommandsImpl) settle(ctx context.Context, gw transaction.Gateway, providerRef, paymentRef string) (*SettlementResult, error) {
	result := &SettlementResult{PaymentRef: paymentRef}
	var notice *purchaseNotice

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result.AlreadySettled = false
		notice = nil

		pending, err := tx.Transactions().FindByProviderRef(ctx, gw, providerRef)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return transaction.ErrTransactionNotFound
			}
			return err
		}
		result.TransactionID = pending.ID()
		if pending.IsPaid() {
			result.AlreadySettled = true
			return nil
		}

		now := uc.clock.Now()
		paid, err := tx.Transactions().MarkPaid(ctx, pending.ID(), paymentRef, now)
		if err != nil {
			return err
		}
		if paid == nil {
			result.AlreadySettled = true
			return nil
		}

		for _, e := range settlementEffects(paid, now) {
			if eerr := tx.Savepoint(ctx, e.apply); eerr != nil {
				slog.Error("settlement effect failed",
					"transaction_id", paid.ID(),
					"effect", e.name,
					"error", eerr)
			}
		}

		notice = uc.buildNotice(ctx, tx, paid)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.AlreadySettled {
		slog.Info("transaction already settled", "transaction_id", result.TransactionID, "gateway", gw)
		return result, nil
	}

	slog.Info("transaction settled", "transaction_id", result.TransactionID, "gateway", gw, "payment_ref", paymentRef)
	if notice != nil {
		uc.notify(ctx, *notice)
	}
	return result, nil
}

type settlementEffect struct {
	name  string
	apply func(ctx context.Context, tx shared.Tx) error
}

func settlementEffects(t *transaction.Transaction, now time.Time) []settlementEffect {
	effects := []settlementEffect{
		{name: "enroll", apply: func(ctx context.Context, tx shared.Tx) error {
			return tx.Enrollments().Enroll(ctx, t.UserID(), t.CourseID(), t.ID(), now)
		}},
		{name: "increment_sales", apply: func(ctx context.Context, tx shared.Tx) error {
			return tx.Courses().IncrementSales(ctx, t.CourseID())
		}},
		{name: "clear_cart_item", apply: func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Carts().Remove(ctx, t.UserID(), t.CourseID())
			return err
		}},
	}

	usage := func(instrumentID uuid.UUID, amount decimal.Decimal) shared.UsageRecord {
		return shared.UsageRecord{
			InstrumentID:  instrumentID,
			UserID:        t.UserID(),
			CourseID:      t.CourseID(),
			TransactionID: t.ID(),
			Amount:        amount,
			UsedAt:        now,
		}
	}

	if cr := t.Credit(); cr != nil {
		effects = append(effects, settlementEffect{name: "debit_credit", apply: func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.Credits().Debit(ctx, cr.ID, cr.Amount)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientCredit
			}
			return tx.Credits().RecordUsage(ctx, usage(cr.ID, cr.Amount))
		}})
	}
	if af := t.Affiliate(); af != nil {
		effects = append(effects, settlementEffect{name: "affiliate_usage", apply: func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.Affiliates().IncrementUsage(ctx, af.ID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrCounterCapReached
			}
			return tx.Affiliates().RecordUsage(ctx, usage(af.ID, af.Amount))
		}})
	}
	if cp := t.Coupon(); cp != nil {
		effects = append(effects, settlementEffect{name: "coupon_usage", apply: func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.Coupons().IncrementUsage(ctx, cp.ID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrCounterCapReached
			}
			return tx.Coupons().RecordUsage(ctx, usage(cp.ID, cp.Amount))
		}})
	}
	return effects
}

func (uc *settlementCommandsImpl) buildNotice(ctx context.Context, tx shared.Tx, t *transaction.Transaction) *purchaseNotice {
	buyer, err := tx.Users().FindByID(ctx, t.UserID())
	if err != nil {
		slog.Error("failed to load buyer for purchase mail", "transaction_id", t.ID(), "error", err)
		return nil
	}
	c, err := tx.Courses().FindByID(ctx, t.CourseID(), true)
	if err != nil {
		slog.Error("failed to load course for purchase mail", "transaction_id", t.ID(), "error", err)
		return nil
	}
	return &purchaseNotice{
		buyerName:  buyer.Name(),
		buyerEmail: buyer.Email().Value(),
		courseName: c.Name(),
		amount:     t.CheckoutPrice().StringFixed(2),
		currency:   t.Currency(),
		paymentRef: t.PaymentRef(),
	}
}

func (uc *settlementCommandsImpl) notify(ctx context.Context, n purchaseNotice) {
	buyerMsg := shared.Message{
		To:      n.buyerEmail,
		Subject: fmt.Sprintf("Thanks for Purchasing the Course, %s !", n.buyerName),
		Text: fmt.Sprintf("Hi %s,\n\nYou are now enrolled in %s. Amount paid: %s %s.\n\n%s",
			n.buyerName, n.courseName, n.amount, n.currency, uc.mail.TeamName),
		HTML: fmt.Sprintf("<p>Hi %s,</p><p>You are now enrolled in <strong>%s</strong>. Amount paid: %s %s.</p><p>%s</p>",
			html.EscapeString(n.buyerName), html.EscapeString(n.courseName), n.amount, n.currency, html.EscapeString(uc.mail.TeamName)),
	}
	if err := uc.mailer.Send(ctx, buyerMsg); err != nil {
		slog.Error("failed to send purchase confirmation", "to", n.buyerEmail, "error", err)
	}

	if uc.mail.OperatorAddr == "" {
		return
	}
	operatorMsg := shared.Message{
		To:      uc.mail.OperatorAddr,
		Subject: fmt.Sprintf("New Course Purchase from %s", n.buyerName),
		Text: fmt.Sprintf("%s <%s> purchased %s for %s %s with reference id %s.",
			n.buyerName, n.buyerEmail, n.courseName, n.amount, n.currency, n.paymentRef),
		HTML: fmt.Sprintf("<p>%s &lt;%s&gt; purchased <strong>%s</strong> for %s %s with reference id <code>%s</code>.</p>",
			html.EscapeString(n.buyerName), html.EscapeString(n.buyerEmail), html.EscapeString(n.courseName),
			n.amount, n.currency, html.EscapeString(n.paymentRef)),
	}
	if err := uc.mailer.Send(ctx, operatorMsg); err != nil {
		slog.Error("failed to send purchase notification", "to", uc.mail.OperatorAddr, "error", err)
	}
}
