//go:build unit

package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"course-checkout/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	gotData map[string]interface{}
	body    map[string]interface{}
	err     error
	delay   time.Duration
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.gotData = data
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.body, f.err
}

func signFor(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpay_VerifySignature(t *testing.T) {
	rp := &Razorpay{secret: []byte("s3cret")}
	valid := signFor("s3cret", "order_1", "pay_1")

	testCases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{name: "valid signature", orderID: "order_1", paymentID: "pay_1", signature: valid, want: true},
		{name: "tampered payment id", orderID: "order_1", paymentID: "pay_2", signature: valid, want: false},
		{name: "tampered order id", orderID: "order_2", paymentID: "pay_1", signature: valid, want: false},
		{name: "signed with another secret", orderID: "order_1", paymentID: "pay_1", signature: signFor("other", "order_1", "pay_1"), want: false},
		{name: "not hex", orderID: "order_1", paymentID: "pay_1", signature: "zz", want: false},
		{name: "empty signature", orderID: "order_1", paymentID: "pay_1", signature: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rp.VerifySignature(tc.orderID, tc.paymentID, tc.signature))
		})
	}
}

func TestRazorpay_CreateOrder(t *testing.T) {
	req := shared.OrderRequest{AmountMinor: 180000, Currency: "INR", Receipt: "tx-1"}

	t.Run("success: maps provider response", func(t *testing.T) {
		orders := &fakeOrders{body: map[string]interface{}{"id": "order_1", "amount": float64(180000), "currency": "INR"}}
		rp := &Razorpay{orders: orders}

		order, err := rp.CreateOrder(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, &shared.Order{ID: "order_1", AmountMinor: 180000, Currency: "INR"}, order)
		assert.Equal(t, int64(180000), orders.gotData["amount"])
		assert.Equal(t, "tx-1", orders.gotData["receipt"])
	})

	t.Run("error: provider failure", func(t *testing.T) {
		rp := &Razorpay{orders: &fakeOrders{err: errors.New("bad request")}}
		_, err := rp.CreateOrder(context.Background(), req)
		require.Error(t, err)
	})

	t.Run("error: response without id", func(t *testing.T) {
		rp := &Razorpay{orders: &fakeOrders{body: map[string]interface{}{}}}
		_, err := rp.CreateOrder(context.Background(), req)
		assert.ErrorIs(t, err, ErrMalformedOrder)
	})

	t.Run("error: context expires before provider answers", func(t *testing.T) {
		rp := &Razorpay{orders: &fakeOrders{delay: 200 * time.Millisecond, body: map[string]interface{}{"id": "late"}}}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := rp.CreateOrder(ctx, req)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
