//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/domain/course"
	"course-checkout/internal/domain/credit"
	"course-checkout/internal/domain/transaction"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/shared"
	"course-checkout/tests/common/builder"
	"course-checkout/tests/common/fake"
	sharedmock "course-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type SettlementTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *fake.UnitOfWork
	orders   *sharedmock.MockOrderGateway
	sessions *sharedmock.MockSessionGateway
	mailer   *sharedmock.MockMailer
	cmds     commands.SettlementCommands

	buyer  *user.User
	course *course.Course
	coupon *coupon.Coupon
	credit *credit.StoredCredit
}

func (s *SettlementTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = fake.NewUnitOfWork()
	s.orders = sharedmock.NewMockOrderGateway(s.ctrl)
	s.sessions = sharedmock.NewMockSessionGateway(s.ctrl)
	s.mailer = sharedmock.NewMockMailer(s.ctrl)
	s.cmds = commands.NewSettlementCommands(
		s.uow, s.orders, s.sessions, s.mailer,
		commands.MailSettings{OperatorAddr: "ops@example.com", TeamName: "The Course Team"},
		clock.NewMockClock(testNow),
	)

	s.buyer = builder.NewUserBuilder().BuildPersisted()
	s.course = builder.NewCourseBuilder().BuildPersisted()
	s.coupon = builder.NewCouponBuilder().BuildPersisted()
	s.credit = builder.NewCreditBuilder().WithUserID(s.buyer.ID()).BuildPersisted()
	s.uow.PutUser(s.buyer)
	s.uow.PutCourse(s.course)
	s.uow.PutCoupon(s.coupon)
	s.uow.PutCredit(s.credit)
}

func (s *SettlementTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *SettlementTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSettlementSuite(t *testing.T) {
	suite.Run(t, new(SettlementTestSuite))
}

// seedPending stores a 1000 purchase discounted by a 10% coupon and 100 of credit.
func (s *SettlementTestSuite) seedPending(gw transaction.Gateway, providerRef string) *transaction.Transaction {
	t, err := transaction.NewPending(transaction.PendingParams{
		UserID:        s.buyer.ID(),
		CourseID:      s.course.ID(),
		Gateway:       gw,
		Currency:      "INR",
		BasePrice:     decimal.NewFromInt(1000),
		CheckoutPrice: decimal.NewFromInt(800),
		Coupon: &transaction.AppliedCoupon{
			ID: s.coupon.ID(), Code: s.coupon.Code().String(),
			Percentage: decimal.NewFromInt(10), Amount: decimal.NewFromInt(100),
		},
		Credit:      &transaction.AppliedCredit{ID: s.credit.ID(), Amount: decimal.NewFromInt(100)},
		ProviderRef: providerRef,
	}, testNow.Add(-time.Minute))
	s.Require().NoError(err)
	s.uow.PutTransaction(t)
	return t
}

func (s *SettlementTestSuite) expectMails(n int) *[]shared.Message {
	var (
		mu   sync.Mutex
		sent []shared.Message
	)
	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg shared.Message) error {
			mu.Lock()
			sent = append(sent, msg)
			mu.Unlock()
			return nil
		}).Times(n)
	return &sent
}

func (s *SettlementTestSuite) TestVerifyRazorpay() {
	ctx := context.Background()

	s.Run("success: marks paid and applies every effect once", func() {
		pending := s.seedPending(transaction.GatewayRazorpay, "order_1")
		s.uow.PutCartItem(s.buyer.ID(), s.course.ID(), testNow)
		s.orders.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
		sent := s.expectMails(2)

		res, err := s.cmds.VerifyRazorpay(ctx, "order_1", "pay_1", "sig")

		s.Require().NoError(err)
		s.Equal(pending.ID(), res.TransactionID)
		s.Equal("pay_1", res.PaymentRef)
		s.False(res.AlreadySettled)

		txs := s.uow.Transactions()
		s.Require().Len(txs, 1)
		s.True(txs[0].IsPaid())
		s.Equal("pay_1", txs[0].PaymentRef())
		s.True(s.uow.IsEnrolled(s.buyer.ID(), s.course.ID()))
		s.Equal(1, s.uow.Course(s.course.ID()).TotalSold())
		s.Equal(1, s.uow.Coupon(s.coupon.ID()).TimesUsed())
		s.True(decimal.NewFromInt(400).Equal(s.uow.Credit(s.credit.ID()).Amount()))
		s.Len(s.uow.CouponUsages(), 1)
		s.Len(s.uow.CreditUsages(), 1)
		s.False(s.uow.InCart(s.buyer.ID(), s.course.ID()), "purchased course leaves the cart")

		s.Require().Len(*sent, 2)
		s.Equal(s.buyer.Email().Value(), (*sent)[0].To)
		s.Contains((*sent)[0].Subject, "Thanks for Purchasing the Course")
		s.Equal("ops@example.com", (*sent)[1].To)
		s.Contains((*sent)[1].Text, "with reference id pay_1")
		s.Contains((*sent)[1].HTML, "<code>pay_1</code>")
		s.Contains((*sent)[1].Text, s.buyer.Email().Value())
	})

	s.Run("replay: second delivery changes nothing", func() {
		s.seedPending(transaction.GatewayRazorpay, "order_1")
		s.orders.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true).Times(2)
		s.expectMails(2)

		_, err := s.cmds.VerifyRazorpay(ctx, "order_1", "pay_1", "sig")
		s.Require().NoError(err)
		res, err := s.cmds.VerifyRazorpay(ctx, "order_1", "pay_1", "sig")

		s.Require().NoError(err)
		s.True(res.AlreadySettled)
		s.Equal(1, s.uow.Course(s.course.ID()).TotalSold())
		s.Equal(1, s.uow.Coupon(s.coupon.ID()).TimesUsed())
		s.True(decimal.NewFromInt(400).Equal(s.uow.Credit(s.credit.ID()).Amount()))
	})

	s.Run("concurrent deliveries settle exactly once", func() {
		s.seedPending(transaction.GatewayRazorpay, "order_1")
		s.orders.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true).AnyTimes()
		s.expectMails(2)

		const workers = 8
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			settled int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := s.cmds.VerifyRazorpay(ctx, "order_1", "pay_1", "sig")
				if err != nil {
					return
				}
				if !res.AlreadySettled {
					mu.Lock()
					settled++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		s.Equal(1, settled)
		s.Equal(1, s.uow.Course(s.course.ID()).TotalSold())
		s.Len(s.uow.CreditUsages(), 1)
	})

	s.Run("error: tampered signature leaves state untouched", func() {
		s.seedPending(transaction.GatewayRazorpay, "order_1")
		s.orders.EXPECT().VerifySignature("order_1", "pay_1", "forged").Return(false)

		_, err := s.cmds.VerifyRazorpay(ctx, "order_1", "pay_1", "forged")

		s.ErrorIs(err, commands.ErrInvalidSignature)
		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal(0, s.uow.WithinCalls)
		s.False(s.uow.Transactions()[0].IsPaid())
	})

	s.Run("error: missing fields are rejected before the gateway", func() {
		_, err := s.cmds.VerifyRazorpay(ctx, "order_1", "", "sig")
		s.ErrorIs(err, commands.ErrInvalidSignature)
	})

	s.Run("error: unknown order", func() {
		s.orders.EXPECT().VerifySignature("order_x", "pay_1", "sig").Return(true)

		_, err := s.cmds.VerifyRazorpay(ctx, "order_x", "pay_1", "sig")

		s.ErrorIs(err, transaction.ErrTransactionNotFound)
	})

	s.Run("failing effect is skipped and payment still recorded", func() {
		s.seedPending(transaction.GatewayRazorpay, "order_1")
		s.uow.FailOn["Enrollments.Enroll"] = errors.New("enrollment table unavailable")
		s.orders.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
		s.expectMails(2)

		res, err := s.cmds.VerifyRazorpay(ctx, "order_1", "pay_1", "sig")

		s.Require().NoError(err)
		s.False(res.AlreadySettled)
		s.True(s.uow.Transactions()[0].IsPaid())
		s.False(s.uow.IsEnrolled(s.buyer.ID(), s.course.ID()))
		s.Equal(1, s.uow.Course(s.course.ID()).TotalSold())
	})

	s.Run("exhausted coupon and short credit are not counted", func() {
		s.uow.PutCoupon(builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ID = s.coupon.ID()
		}).WithUsage(5, 5).BuildPersisted())
		s.uow.PutCredit(builder.NewCreditBuilder().With(func(b *builder.CreditBuilder) {
			b.ID = s.credit.ID()
		}).WithUserID(s.buyer.ID()).WithAmount(50).BuildPersisted())
		s.seedPending(transaction.GatewayRazorpay, "order_1")
		s.orders.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
		s.expectMails(2)

		_, err := s.cmds.VerifyRazorpay(ctx, "order_1", "pay_1", "sig")

		s.Require().NoError(err)
		s.Equal(5, s.uow.Coupon(s.coupon.ID()).TimesUsed())
		s.Empty(s.uow.CouponUsages())
		s.True(decimal.NewFromInt(50).Equal(s.uow.Credit(s.credit.ID()).Amount()))
		s.Empty(s.uow.CreditUsages())
		s.True(s.uow.IsEnrolled(s.buyer.ID(), s.course.ID()))
	})
}

func (s *SettlementTestSuite) TestHandleStripeWebhook() {
	ctx := context.Background()
	payload := []byte(`{"id":"evt_1"}`)

	s.Run("success: completed session settles with the payment intent", func() {
		pending := s.seedPending(transaction.GatewayStripe, "cs_1")
		s.sessions.EXPECT().ParseWebhook(payload, "t=1,v1=ok").Return(&shared.WebhookEvent{
			ID:        "evt_1",
			Type:      "checkout.session.completed",
			Completed: &shared.CompletedSession{SessionID: "cs_1", PaymentIntentID: "pi_1"},
		}, nil)
		s.expectMails(2)

		res, err := s.cmds.HandleStripeWebhook(ctx, payload, "t=1,v1=ok")

		s.Require().NoError(err)
		s.Require().NotNil(res.Settlement)
		s.Equal(pending.ID(), res.Settlement.TransactionID)
		s.Equal("pi_1", s.uow.Transactions()[0].PaymentRef())
	})

	s.Run("session id stands in for a missing payment intent", func() {
		s.seedPending(transaction.GatewayStripe, "cs_1")
		s.sessions.EXPECT().ParseWebhook(payload, "sig").Return(&shared.WebhookEvent{
			ID:        "evt_1",
			Type:      "checkout.session.completed",
			Completed: &shared.CompletedSession{SessionID: "cs_1"},
		}, nil)
		s.expectMails(2)

		_, err := s.cmds.HandleStripeWebhook(ctx, payload, "sig")

		s.Require().NoError(err)
		s.Equal("cs_1", s.uow.Transactions()[0].PaymentRef())
	})

	s.Run("other events are acknowledged without settling", func() {
		s.seedPending(transaction.GatewayStripe, "cs_1")
		s.sessions.EXPECT().ParseWebhook(payload, "sig").Return(&shared.WebhookEvent{
			ID: "evt_2", Type: "payment_intent.created",
		}, nil)

		res, err := s.cmds.HandleStripeWebhook(ctx, payload, "sig")

		s.Require().NoError(err)
		s.Equal("payment_intent.created", res.EventType)
		s.Nil(res.Settlement)
		s.False(s.uow.Transactions()[0].IsPaid())
	})

	s.Run("error: bad signature", func() {
		s.sessions.EXPECT().ParseWebhook(payload, "forged").Return(nil, errors.New("signature mismatch"))

		_, err := s.cmds.HandleStripeWebhook(ctx, payload, "forged")

		s.True(errs.Is(err, commands.ErrWebhookVerification))
		s.Equal(0, s.uow.WithinCalls)
	})

	s.Run("mail failure does not fail settlement", func() {
		s.seedPending(transaction.GatewayStripe, "cs_1")
		s.sessions.EXPECT().ParseWebhook(payload, "sig").Return(&shared.WebhookEvent{
			Type:      "checkout.session.completed",
			Completed: &shared.CompletedSession{SessionID: "cs_1", PaymentIntentID: "pi_1"},
		}, nil)
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(2)

		res, err := s.cmds.HandleStripeWebhook(ctx, payload, "sig")

		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, res.Settlement.TransactionID)
	})
}
