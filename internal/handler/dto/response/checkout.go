package response

import (
	"course-checkout/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type RazorpayCheckoutResponse struct {
	Status        string          `json:"status"`
	Order         RazorpayOrder   `json:"order"`
	TransactionID string          `json:"transactionId"`
	CheckoutPrice decimal.Decimal `json:"checkoutPrice"`
}

func FromRazorpayCheckout(r *commands.RazorpayCheckoutResult) *RazorpayCheckoutResponse {
	return &RazorpayCheckoutResponse{
		Status: StatusSuccess,
		Order: RazorpayOrder{
			ID:       r.Order.ID,
			Amount:   r.Order.AmountMinor,
			Currency: r.Order.Currency,
		},
		TransactionID: r.TransactionID.String(),
		CheckoutPrice: r.CheckoutPrice,
	}
}

type StripeCheckoutResponse struct {
	Status        string          `json:"status"`
	SessionID     string          `json:"sessionId"`
	URL           string          `json:"url"`
	TransactionID string          `json:"transactionId"`
	CheckoutPrice decimal.Decimal `json:"checkoutPrice"`
}

func FromStripeCheckout(r *commands.StripeCheckoutResult) *StripeCheckoutResponse {
	return &StripeCheckoutResponse{
		Status:        StatusSuccess,
		SessionID:     r.SessionID,
		URL:           r.URL,
		TransactionID: r.TransactionID.String(),
		CheckoutPrice: r.CheckoutPrice,
	}
}
