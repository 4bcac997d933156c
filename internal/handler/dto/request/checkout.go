package request

import (
	"course-checkout/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	CourseID      uuid.UUID        `json:"courseId" binding:"required"`
	CouponCode    string           `json:"couponCode" binding:"omitempty,max=64"`
	AffiliateCode string           `json:"affiliateCode" binding:"omitempty,max=64"`
	InCashAmount  *decimal.Decimal `json:"inCashAmount"`
}

// ToCommand takes the buyer from the token, never from the body.
func (r *CheckoutRequest) ToCommand(userID uuid.UUID) commands.CheckoutRequest {
	cmd := commands.CheckoutRequest{
		UserID:        userID,
		CourseID:      r.CourseID,
		CouponCode:    r.CouponCode,
		AffiliateCode: r.AffiliateCode,
	}
	if r.InCashAmount != nil {
		cmd.CreditAmount = *r.InCashAmount
	}
	return cmd
}

// RazorpayVerifyRequest is posted by the Razorpay checkout form.
type RazorpayVerifyRequest struct {
	OrderID   string `json:"razorpay_order_id" form:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" form:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" form:"razorpay_signature" binding:"required"`
}
