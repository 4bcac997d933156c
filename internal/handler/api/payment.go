package api

import (
	"net/http"
	"net/url"

	reqdto "course-checkout/internal/handler/dto/request"
	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBytes       = 64 << 10
)

type PaymentHandler struct {
	checkout   commands.CheckoutCommands
	settlement commands.SettlementCommands
	successURL string
}

func NewPaymentHandler(checkout commands.CheckoutCommands, settlement commands.SettlementCommands, cfg config.RazorpayConfig) *PaymentHandler {
	return &PaymentHandler{
		checkout:   checkout,
		settlement: settlement,
		successURL: cfg.SuccessPageURL,
	}
}

// @Summary Start Razorpay checkout
// @Description Prices the course for the authenticated buyer and opens a Razorpay order
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.RazorpayCheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/razorpay/checkout [post]
func (h *PaymentHandler) RazorpayCheckout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.checkout.StartRazorpay(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRazorpayCheckout(result))
}

// @Summary Verify Razorpay payment
// @Description Checks the Razorpay signature, settles the transaction and redirects to the success page
// @Tags payments
// @Accept json,x-www-form-urlencoded
// @Param razorpay_order_id formData string true "Order ID"
// @Param razorpay_payment_id formData string true "Payment ID"
// @Param razorpay_signature formData string true "Signature"
// @Success 303 "Redirect to the success page"
// @Failure 400 {object} httperr.Response
// @Router /payments/razorpay/verify [post]
func (h *PaymentHandler) RazorpayVerify(c *gin.Context) {
	var req reqdto.RazorpayVerifyRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.ErrInvalidSignature.Error(), nil)
		return
	}

	result, err := h.settlement.VerifyRazorpay(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, h.successURL+"?reference="+url.QueryEscape(result.PaymentRef))
}

// @Summary Start Stripe checkout
// @Description Prices the course and opens a Stripe checkout session. Redirects to it unless mode=json
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mode query string false "json to receive the session instead of a redirect"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.StripeCheckoutResponse
// @Success 303 "Redirect to Stripe"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /payments/stripe/checkout [post]
func (h *PaymentHandler) StripeCheckout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.checkout.StartStripe(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if c.Query("mode") == "json" {
		c.JSON(http.StatusOK, resdto.FromStripeCheckout(result))
		return
	}
	c.Redirect(http.StatusSeeOther, result.URL)
}

// @Summary Stripe webhook
// @Description Verifies the Stripe-Signature header and settles completed checkout sessions
// @Tags payments
// @Accept json
// @Produce plain
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {string} string "ok"
// @Failure 400 {object} httperr.Response
// @Router /payments/stripe/webhook [post]
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes)
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable webhook body", nil)
		return
	}

	_, err = h.settlement.HandleStripeWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		if errs.Is(err, commands.ErrWebhookVerification) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook Error", nil)
			return
		}
		// A 5xx makes Stripe redeliver, and settlement is idempotent.
		httperr.Respond(c, err)
		return
	}
	c.String(http.StatusOK, "ok")
}
