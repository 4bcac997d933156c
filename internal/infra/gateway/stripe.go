package gateway

import (
	"context"
	"encoding/json"
	"strings"

	"course-checkout/internal/pkg/config"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

const eventCheckoutSessionCompleted = "checkout.session.completed"

var ErrMalformedEvent = errs.New("stripe event payload is malformed")

// sessionAPI is the subset of the stripe checkout session client we call.
type sessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Stripe struct {
	sessions      sessionAPI
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripe(cfg config.StripeConfig) *Stripe {
	api := client.New(cfg.SecretKey, nil)
	return &Stripe{
		sessions:      api.CheckoutSessions,
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessPageURL,
		cancelURL:     cfg.CancelPageURL,
	}
}

func (s *Stripe) CreateSession(ctx context.Context, req shared.SessionRequest) (*shared.Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(s.successURL),
		CancelURL:         stripe.String(s.cancelURL),
		ClientReferenceID: stripe.String(req.TransactionID.String()),
		LineItems:         []*stripe.CheckoutSessionLineItemParams{s.lineItem(req)},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx
	params.AddMetadata("transaction_id", req.TransactionID.String())

	session, err := s.sessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe create checkout session")
	}
	return &shared.Session{ID: session.ID, URL: session.URL}, nil
}

// lineItem charges the catalog price when it matches the amount due and an
// inline price otherwise.
func (s *Stripe) lineItem(req shared.SessionRequest) *stripe.CheckoutSessionLineItemParams {
	if req.PriceID != "" {
		return &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(req.PriceID),
			Quantity: stripe.Int64(1),
		}
	}
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(strings.ToLower(req.Currency)),
			UnitAmount: stripe.Int64(req.AmountMinor),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(req.CourseName),
			},
		},
		Quantity: stripe.Int64(1),
	}
}

// ParseWebhook verifies the Stripe-Signature header before decoding anything
// from the payload.
func (s *Stripe) ParseWebhook(payload []byte, signatureHeader string) (*shared.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, errs.Wrap(err, "stripe webhook signature")
	}

	out := &shared.WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if out.Type != eventCheckoutSessionCompleted {
		return out, nil
	}
	if event.Data == nil {
		return nil, ErrMalformedEvent
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}
	if session.ID == "" {
		return nil, ErrMalformedEvent
	}

	completed := &shared.CompletedSession{SessionID: session.ID}
	if session.PaymentIntent != nil {
		completed.PaymentIntentID = session.PaymentIntent.ID
	}
	out.Completed = completed
	return out, nil
}
