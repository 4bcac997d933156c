package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"course-checkout/internal/pkg/config"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/razorpay/razorpay-go"
)

var ErrMalformedOrder = errs.New("razorpay returned a malformed order")

// orderAPI is the subset of the razorpay-go order resource we call.
type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Razorpay struct {
	orders orderAPI
	secret []byte
}

func NewRazorpay(cfg config.RazorpayConfig) *Razorpay {
	client := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	return &Razorpay{orders: client.Order, secret: []byte(cfg.KeySecret)}
}

func (r *Razorpay) CreateOrder(ctx context.Context, req shared.OrderRequest) (*shared.Order, error) {
	type result struct {
		body map[string]interface{}
		err  error
	}
	// razorpay-go has no context support; the call is abandoned when ctx expires.
	done := make(chan result, 1)
	go func() {
		body, err := r.orders.Create(map[string]interface{}{
			"amount":   req.AmountMinor,
			"currency": req.Currency,
			"receipt":  req.Receipt,
		}, nil)
		done <- result{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errs.Wrap(ctx.Err(), "razorpay create order")
	case res := <-done:
		if res.err != nil {
			return nil, errs.Wrap(res.err, "razorpay create order")
		}
		return parseOrder(res.body, req)
	}
}

func parseOrder(body map[string]interface{}, req shared.OrderRequest) (*shared.Order, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return nil, ErrMalformedOrder
	}
	order := &shared.Order{ID: id, AmountMinor: req.AmountMinor, Currency: req.Currency}
	// JSON numbers decode as float64.
	if amount, ok := body["amount"].(float64); ok {
		order.AmountMinor = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok && currency != "" {
		order.Currency = currency
	}
	return order, nil
}

// VerifySignature checks the hex HMAC-SHA256 of "orderId|paymentId".
func (r *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	claimed, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(r.sign(orderID, paymentID), claimed)
}

func (r *Razorpay) sign(orderID, paymentID string) []byte {
	mac := hmac.New(sha256.New, r.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return mac.Sum(nil)
}
