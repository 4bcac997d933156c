//go:build e2e

package checkout_test

import (
	"bytes"
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/handler/dto/request"
	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/infra/repository"
	"course-checkout/tests/common/authtest"
	"course-checkout/tests/common/dbtest"
	"course-checkout/tests/common/httptest"
	"course-checkout/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	razorpayCheckoutURL = "/api/payments/razorpay/checkout"
	razorpayVerifyURL   = "/api/payments/razorpay/verify"
	stripeCheckoutURL   = "/api/payments/stripe/checkout"
	stripeWebhookURL    = "/api/payments/stripe/webhook"
)

type checkoutSuite struct {
	e2e.SharedSuite

	buyerID  uuid.UUID
	token    string
	courseID uuid.UUID
	couponID uuid.UUID
	creditID uuid.UUID
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.buyerID, s.token = authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleUser))
	s.creditID = dbtest.CreateTestCredit(t, s.DB, s.buyerID, decimal.NewFromInt(500))
	s.courseID = dbtest.CreateTestCourse(t, s.DB, "Go in Production", decimal.NewFromInt(1000))
	s.couponID = dbtest.CreateTestCoupon(t, s.DB, "SAVE10", decimal.NewFromInt(10), 5)
}

func (s *checkoutSuite) TestRazorpay() {
	s.Run("checkout then verify settles once", func() {
		t := s.T()
		credit := decimal.NewFromInt(100)

		order := s.startRazorpay(t, request.CheckoutRequest{
			CourseID:     s.courseID,
			CouponCode:   "save10",
			InCashAmount: &credit,
		})
		assert.True(t, decimal.NewFromInt(800).Equal(order.CheckoutPrice), order.CheckoutPrice.String())
		assert.Equal(t, int64(80000), order.Order.Amount)
		assert.Equal(t, "INR", order.Order.Currency)

		verify := request.RazorpayVerifyRequest{
			OrderID:   order.Order.ID,
			PaymentID: "pay_001",
			Signature: e2e.ValidSignature,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, razorpayVerifyURL, verify, "")
		require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
		assert.Equal(t, s.Config.Razorpay.SuccessPageURL+"?reference=pay_001", w.Header().Get("Location"))

		// redelivery is a no-op
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, razorpayVerifyURL, verify, "")
		require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

		s.assertSettled(t, order.TransactionID)
		assert.Equal(t, 1, s.count(t, "SELECT total_sold FROM courses WHERE id = $1", s.courseID))
		assert.Equal(t, 1, s.count(t, "SELECT times_used FROM coupons WHERE id = $1", s.couponID))
		assert.Equal(t, 1, s.count(t, "SELECT count(*) FROM coupon_usages WHERE coupon_id = $1", s.couponID))
		assert.Equal(t, 1, s.count(t, "SELECT count(*) FROM credit_usages WHERE credit_id = $1", s.creditID))

		var balance decimal.Decimal
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT amount FROM stored_credits WHERE id = $1", s.creditID).Scan(&balance))
		assert.True(t, decimal.NewFromInt(400).Equal(balance), balance.String())

		// buyer confirmation and operator notice
		assert.Len(t, s.Gateways.Mailer.Sent(), 2)
	})

	s.Run("bad signature changes nothing", func() {
		t := s.T()
		order := s.startRazorpay(t, request.CheckoutRequest{CourseID: s.courseID})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, razorpayVerifyURL, request.RazorpayVerifyRequest{
			OrderID:   order.Order.ID,
			PaymentID: "pay_002",
			Signature: "forged",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Payment Failed Invalid Signature")

		assert.Equal(t, 0, s.count(t, "SELECT count(*) FROM transactions WHERE is_paid"))
		assert.Equal(t, 0, s.count(t, "SELECT count(*) FROM enrollments"))
		assert.Empty(t, s.Gateways.Mailer.Sent())
	})

	s.Run("enrolled buyer cannot check out again", func() {
		t := s.T()
		dbtest.CreateTestEnrollment(t, s.DB, s.buyerID, s.courseID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, razorpayCheckoutURL,
			request.CheckoutRequest{CourseID: s.courseID}, s.token)
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("credit above the cap is rejected", func() {
		t := s.T()
		credit := decimal.NewFromInt(101)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, razorpayCheckoutURL,
			request.CheckoutRequest{CourseID: s.courseID, InCashAmount: &credit}, s.token)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, 0, s.count(t, "SELECT count(*) FROM transactions"))
	})

	s.Run("unknown coupon is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, razorpayCheckoutURL,
			request.CheckoutRequest{CourseID: s.courseID, CouponCode: "NOPE"}, s.token)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, razorpayCheckoutURL,
			request.CheckoutRequest{CourseID: s.courseID}, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *checkoutSuite) TestStripe() {
	s.Run("webhook settles the session", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, stripeCheckoutURL+"?mode=json",
			request.CheckoutRequest{CourseID: s.courseID}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var session resdto.StripeCheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &session))
		require.NotEmpty(t, session.SessionID)

		body := []byte(`{"type":"checkout.session.completed","sessionId":"` + session.SessionID + `","paymentIntentId":"pi_123"}`)
		w = s.postWebhook(body, e2e.ValidWebhookSign)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "ok", w.Body.String())

		w = s.postWebhook(body, e2e.ValidWebhookSign)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		s.assertSettled(t, session.TransactionID)
		assert.Equal(t, 1, s.count(t, "SELECT total_sold FROM courses WHERE id = $1", s.courseID))
	})

	s.Run("redirect mode", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, stripeCheckoutURL,
			request.CheckoutRequest{CourseID: s.courseID}, s.token)
		require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
		assert.Contains(t, w.Header().Get("Location"), "https://checkout.example.test/")
	})

	s.Run("unverified webhook is rejected", func() {
		t := s.T()

		w := s.postWebhook([]byte(`{"type":"checkout.session.completed","sessionId":"cs_x"}`), "t=1,v1=forged")
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("other events are acknowledged", func() {
		t := s.T()

		w := s.postWebhook([]byte(`{"type":"payment_intent.created","sessionId":"cs_x"}`), e2e.ValidWebhookSign)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, 0, s.count(t, "SELECT count(*) FROM transactions WHERE is_paid"))
	})
}

func (s *checkoutSuite) TestConcurrentRedemption() {
	const workers = 8

	s.Run("coupon usage never passes the cap", func() {
		t := s.T()
		couponID := dbtest.CreateTestCoupon(t, s.DB, "LASTONE", decimal.NewFromInt(10), 1)
		repo := repository.NewCouponRepository(s.DB)

		var won atomic.Int32
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := repo.IncrementUsage(context.Background(), couponID)
				assert.NoError(t, err)
				if ok {
					won.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), won.Load())
		assert.Equal(t, 1, s.count(t, "SELECT times_used FROM coupons WHERE id = $1", couponID))
	})

	s.Run("credit is never debited below zero", func() {
		t := s.T()
		repo := repository.NewCreditRepository(s.DB)

		var won atomic.Int32
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := repo.Debit(context.Background(), s.creditID, decimal.NewFromInt(100))
				assert.NoError(t, err)
				if ok {
					won.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), won.Load())
		assert.Equal(t, 0, s.count(t, "SELECT amount::int FROM stored_credits WHERE id = $1", s.creditID))
	})
}

func (s *checkoutSuite) startRazorpay(t *testing.T, req request.CheckoutRequest) resdto.RazorpayCheckoutResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, razorpayCheckoutURL, req, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res resdto.RazorpayCheckoutResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *checkoutSuite) postWebhook(body []byte, signature string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodPost, stripeWebhookURL, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", signature)
	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *checkoutSuite) assertSettled(t *testing.T, transactionID string) {
	t.Helper()
	var paid bool
	require.NoError(t, s.DB.QueryRow(context.Background(),
		"SELECT is_paid FROM transactions WHERE id = $1", transactionID).Scan(&paid))
	assert.True(t, paid)
	assert.Equal(t, 1, s.count(t, "SELECT count(*) FROM enrollments WHERE user_id = $1 AND course_id = $2", s.buyerID, s.courseID))
}

func (s *checkoutSuite) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}
