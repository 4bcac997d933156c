//go:build unit

package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const testWebhookSecret = "whsec_test"

type fakeSessions struct {
	got *stripe.CheckoutSessionParams
	err error
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.test/cs_test_1"}, nil
}

func signedHeader(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func TestStripe_CreateSession(t *testing.T) {
	txID := uuid.New()

	t.Run("catalog price when no discount applies", func(t *testing.T) {
		sessions := &fakeSessions{}
		s := &Stripe{sessions: sessions, successURL: "http://ok", cancelURL: "http://cancel"}

		session, err := s.CreateSession(context.Background(), shared.SessionRequest{
			TransactionID: txID, CourseName: "Go", PriceID: "price_1", AmountMinor: 200000, Currency: "INR",
		})
		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", session.ID)
		require.Len(t, sessions.got.LineItems, 1)
		assert.Equal(t, "price_1", *sessions.got.LineItems[0].Price)
		assert.Nil(t, sessions.got.LineItems[0].PriceData)
		assert.Equal(t, txID.String(), *sessions.got.ClientReferenceID)
		assert.Equal(t, "http://ok", *sessions.got.SuccessURL)
	})

	t.Run("inline amount when discounted", func(t *testing.T) {
		sessions := &fakeSessions{}
		s := &Stripe{sessions: sessions}

		_, err := s.CreateSession(context.Background(), shared.SessionRequest{
			TransactionID: txID, CourseName: "Go", AmountMinor: 180000, Currency: "INR", CustomerEmail: "a@example.com",
		})
		require.NoError(t, err)
		item := sessions.got.LineItems[0]
		assert.Nil(t, item.Price)
		assert.Equal(t, int64(180000), *item.PriceData.UnitAmount)
		assert.Equal(t, "inr", *item.PriceData.Currency)
		assert.Equal(t, "Go", *item.PriceData.ProductData.Name)
		assert.Equal(t, "a@example.com", *sessions.got.CustomerEmail)
	})

	t.Run("provider failure", func(t *testing.T) {
		s := &Stripe{sessions: &fakeSessions{err: errors.New("boom")}}
		_, err := s.CreateSession(context.Background(), shared.SessionRequest{TransactionID: txID})
		require.Error(t, err)
	})
}

func TestStripe_ParseWebhook(t *testing.T) {
	s := &Stripe{webhookSecret: testWebhookSecret}
	completed := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed",` +
		`"data":{"object":{"id":"cs_test_1","object":"checkout.session","payment_intent":"pi_1"}}}`)

	t.Run("completed session", func(t *testing.T) {
		event, err := s.ParseWebhook(completed, signedHeader(t, completed, testWebhookSecret))
		require.NoError(t, err)
		assert.Equal(t, "checkout.session.completed", event.Type)
		require.NotNil(t, event.Completed)
		assert.Equal(t, "cs_test_1", event.Completed.SessionID)
		assert.Equal(t, "pi_1", event.Completed.PaymentIntentID)
	})

	t.Run("other event types carry no session", func(t *testing.T) {
		payload := []byte(`{"id":"evt_2","object":"event","type":"charge.refunded","data":{"object":{"id":"ch_1"}}}`)
		event, err := s.ParseWebhook(payload, signedHeader(t, payload, testWebhookSecret))
		require.NoError(t, err)
		assert.Equal(t, "charge.refunded", event.Type)
		assert.Nil(t, event.Completed)
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		header := signedHeader(t, completed, testWebhookSecret)
		tampered := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed",` +
			`"data":{"object":{"id":"cs_test_2","object":"checkout.session","payment_intent":"pi_1"}}}`)
		_, err := s.ParseWebhook(tampered, header)
		require.Error(t, err)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		_, err := s.ParseWebhook(completed, signedHeader(t, completed, "whsec_other"))
		require.Error(t, err)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		_, err := s.ParseWebhook(completed, "")
		require.Error(t, err)
	})
}
