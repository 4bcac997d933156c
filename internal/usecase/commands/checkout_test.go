//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/checkout"
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

type CheckoutTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *fake.UnitOfWork
	orders   *sharedmock.MockOrderGateway
	sessions *sharedmock.MockSessionGateway
	cmds     commands.CheckoutCommands

	buyer     *user.User
	course    *course.Course
	coupon    *coupon.Coupon
	affiliate *affiliate.Code
	credit    *credit.StoredCredit
}

func (s *CheckoutTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = fake.NewUnitOfWork()
	s.orders = sharedmock.NewMockOrderGateway(s.ctrl)
	s.sessions = sharedmock.NewMockSessionGateway(s.ctrl)
	s.cmds = commands.NewCheckoutCommands(
		s.uow,
		checkout.NewResolver(checkout.WindowStrict, decimal.NewFromInt(10)),
		s.orders,
		s.sessions,
		commands.CheckoutSettings{Currency: "INR", MinorUnitValue: 100},
		clock.NewMockClock(testNow),
	)

	s.buyer = builder.NewUserBuilder().BuildPersisted()
	s.course = builder.NewCourseBuilder().BuildPersisted()
	s.coupon = builder.NewCouponBuilder().BuildPersisted()
	s.affiliate = builder.NewAffiliateBuilder().BuildPersisted()
	s.credit = builder.NewCreditBuilder().WithUserID(s.buyer.ID()).BuildPersisted()
	s.uow.PutUser(s.buyer)
	s.uow.PutCourse(s.course)
	s.uow.PutCoupon(s.coupon)
	s.uow.PutAffiliate(s.affiliate)
	s.uow.PutCredit(s.credit)
}

func (s *CheckoutTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *CheckoutTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func (s *CheckoutTestSuite) request(mutate ...func(*commands.CheckoutRequest)) commands.CheckoutRequest {
	req := commands.CheckoutRequest{UserID: s.buyer.ID(), CourseID: s.course.ID()}
	for _, m := range mutate {
		m(&req)
	}
	return req
}

func withEverything(r *commands.CheckoutRequest) {
	r.CouponCode = " summer10 "
	r.AffiliateCode = "partner50"
	r.CreditAmount = decimal.NewFromInt(100)
}

func (s *CheckoutTestSuite) TestStartRazorpay() {
	ctx := context.Background()

	s.Run("success: prices every instrument and records a pending transaction", func() {
		s.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.OrderRequest) (*shared.Order, error) {
				s.Equal(int64(75000), req.AmountMinor)
				s.Equal("INR", req.Currency)
				s.NotEmpty(req.Receipt)
				return &shared.Order{ID: "order_1", AmountMinor: req.AmountMinor, Currency: req.Currency}, nil
			})

		res, err := s.cmds.StartRazorpay(ctx, s.request(withEverything))

		s.Require().NoError(err)
		s.Equal("order_1", res.Order.ID)
		s.True(decimal.NewFromInt(750).Equal(res.CheckoutPrice))

		txs := s.uow.Transactions()
		s.Require().Len(txs, 1)
		t := txs[0]
		s.Equal(res.TransactionID, t.ID())
		s.Equal(transaction.GatewayRazorpay, t.Gateway())
		s.Equal("order_1", t.ProviderRef())
		s.False(t.IsPaid())
		s.True(decimal.NewFromInt(1000).Equal(t.BasePrice()))
		s.Require().NotNil(t.Coupon())
		s.Equal("SUMMER10", t.Coupon().Code)
		s.True(decimal.NewFromInt(100).Equal(t.Coupon().Amount))
		s.Require().NotNil(t.Affiliate())
		s.True(decimal.NewFromInt(50).Equal(t.Affiliate().Amount))
		s.Require().NotNil(t.Credit())
		s.True(decimal.NewFromInt(100).Equal(t.Credit().Amount))

		// Nothing is consumed until the payment settles.
		s.Equal(0, s.uow.Coupon(s.coupon.ID()).TimesUsed())
		s.True(decimal.NewFromInt(500).Equal(s.uow.Credit(s.credit.ID()).Amount()))
	})

	s.Run("error: gateway failure persists nothing", func() {
		s.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := s.cmds.StartRazorpay(ctx, s.request())

		s.True(errs.Is(err, commands.ErrGatewayFailure))
		s.Empty(s.uow.Transactions())
	})

	cases := []struct {
		name    string
		setup   func()
		mutate  func(*commands.CheckoutRequest)
		wantErr error
	}{
		{
			name:    "already enrolled",
			setup:   func() { s.uow.Enroll(s.buyer.ID(), s.course.ID(), uuid.New()) },
			wantErr: commands.ErrAlreadyEnrolled,
		},
		{
			name:    "unknown course",
			mutate:  func(r *commands.CheckoutRequest) { r.CourseID = uuid.New() },
			wantErr: course.ErrCourseNotFound,
		},
		{
			name: "unpublished course",
			setup: func() {
				s.uow.PutCourse(builder.NewCourseBuilder().WithID(s.course.ID()).AsUnpublished().BuildPersisted())
			},
			wantErr: course.ErrNotPurchasable,
		},
		{
			name:    "unknown coupon",
			mutate:  func(r *commands.CheckoutRequest) { r.CouponCode = "NOPE" },
			wantErr: checkout.ErrInvalidCoupon,
		},
		{
			name:    "unknown affiliate code",
			mutate:  func(r *commands.CheckoutRequest) { r.AffiliateCode = "NOPE" },
			wantErr: checkout.ErrInvalidAffiliateCode,
		},
		{
			name:    "credit above the cap",
			mutate:  func(r *commands.CheckoutRequest) { r.CreditAmount = decimal.NewFromInt(101) },
			wantErr: checkout.ErrInvalidCreditAmount,
		},
		{
			name: "credit without a stored balance",
			mutate: func(r *commands.CheckoutRequest) {
				r.UserID = uuid.New()
				r.CreditAmount = decimal.NewFromInt(10)
			},
			wantErr: checkout.ErrCreditNotFound,
		},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			if tc.setup != nil {
				tc.setup()
			}
			var mutate []func(*commands.CheckoutRequest)
			if tc.mutate != nil {
				mutate = append(mutate, tc.mutate)
			}

			_, err := s.cmds.StartRazorpay(ctx, s.request(mutate...))

			s.ErrorIs(err, tc.wantErr)
			s.Empty(s.uow.Transactions())
		})
	}
}

func (s *CheckoutTestSuite) TestStartStripe() {
	ctx := context.Background()

	s.Run("catalog price is used when nothing is discounted", func() {
		s.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.SessionRequest) (*shared.Session, error) {
				s.Equal("price_test_123", req.PriceID)
				s.Equal(int64(100000), req.AmountMinor)
				s.Equal(s.buyer.Email().Value(), req.CustomerEmail)
				s.Equal(s.course.Name(), req.CourseName)
				return &shared.Session{ID: "cs_1", URL: "https://checkout.stripe.test/cs_1"}, nil
			})

		res, err := s.cmds.StartStripe(ctx, s.request())

		s.Require().NoError(err)
		s.Equal("cs_1", res.SessionID)
		s.Equal("https://checkout.stripe.test/cs_1", res.URL)
		txs := s.uow.Transactions()
		s.Require().Len(txs, 1)
		s.Equal(transaction.GatewayStripe, txs[0].Gateway())
		s.Equal("cs_1", txs[0].ProviderRef())
	})

	s.Run("discounted checkout charges inline price data", func() {
		s.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.SessionRequest) (*shared.Session, error) {
				s.Empty(req.PriceID)
				s.Equal(int64(90000), req.AmountMinor)
				return &shared.Session{ID: "cs_2", URL: "https://checkout.stripe.test/cs_2"}, nil
			})

		res, err := s.cmds.StartStripe(ctx, s.request(func(r *commands.CheckoutRequest) { r.CouponCode = "SUMMER10" }))

		s.Require().NoError(err)
		s.True(decimal.NewFromInt(900).Equal(res.CheckoutPrice))
	})

	s.Run("active course discount charges inline price data", func() {
		start, end := testNow.Add(-24*time.Hour), testNow.Add(24*time.Hour)
		onSale := builder.NewCourseBuilder().WithPrice(800).WithDiscount(200, &start, &end, true).BuildPersisted()
		s.uow.PutCourse(onSale)
		s.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.SessionRequest) (*shared.Session, error) {
				s.Empty(req.PriceID)
				s.Equal(int64(80000), req.AmountMinor)
				return &shared.Session{ID: "cs_3", URL: "https://checkout.stripe.test/cs_3"}, nil
			})

		res, err := s.cmds.StartStripe(ctx, s.request(func(r *commands.CheckoutRequest) { r.CourseID = onSale.ID() }))

		s.Require().NoError(err)
		s.True(decimal.NewFromInt(800).Equal(res.CheckoutPrice))
		txs := s.uow.Transactions()
		s.Require().Len(txs, 1)
		s.True(decimal.NewFromInt(800).Equal(txs[0].CheckoutPrice()))
	})

	s.Run("error: session failure persists nothing", func() {
		s.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("stripe unavailable"))

		_, err := s.cmds.StartStripe(ctx, s.request())

		s.True(errs.Is(err, commands.ErrGatewayFailure))
		s.Empty(s.uow.Transactions())
	})
}
