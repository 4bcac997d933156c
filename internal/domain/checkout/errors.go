package checkout

import "course-checkout/internal/pkg/errs"

var (
	ErrInvalidCoupon          = errs.Validation("Invalid Coupon")
	ErrCouponExpired          = errs.Validation("Coupon Expired")
	ErrCouponExhausted        = errs.Validation("Coupon Exhausted")
	ErrInvalidAffiliateCode   = errs.Validation("Invalid Affiliate Code")
	ErrAffiliateCodeExpired   = errs.Validation("Affiliate Code Expired")
	ErrAffiliateCodeExhausted = errs.Validation("Affiliate Code Exhausted")
	ErrCreditNotFound         = errs.NotFound("Credit Not Found")
	ErrCreditExpired          = errs.Validation("Credit Expired")
	ErrInvalidCreditAmount    = errs.Validation("Invalid InCash Amount")
	ErrInvalidCheckoutPrice   = errs.Validation("Invalid Checkout Price")
	ErrInvalidWindowPolicy    = errs.New("unknown checkout window policy")
)
