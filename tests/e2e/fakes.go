//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"sync"

	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	ValidSignature   = "valid-signature"
	ValidWebhookSign = "t=1,v1=valid"
)

type FakeOrderGateway struct {
	mu     sync.Mutex
	orders map[string]shared.OrderRequest
}

func NewFakeOrderGateway() *FakeOrderGateway {
	return &FakeOrderGateway{orders: map[string]shared.OrderRequest{}}
}

func (g *FakeOrderGateway) CreateOrder(_ context.Context, req shared.OrderRequest) (*shared.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := "order_" + uuid.NewString()[:12]
	g.orders[id] = req
	return &shared.Order{ID: id, AmountMinor: req.AmountMinor, Currency: req.Currency}, nil
}

func (g *FakeOrderGateway) VerifySignature(_, _, signature string) bool {
	return signature == ValidSignature
}

type FakeSessionGateway struct {
	mu       sync.Mutex
	sessions map[string]shared.SessionRequest
}

func NewFakeSessionGateway() *FakeSessionGateway {
	return &FakeSessionGateway{sessions: map[string]shared.SessionRequest{}}
}

func (g *FakeSessionGateway) CreateSession(_ context.Context, req shared.SessionRequest) (*shared.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := "cs_test_" + uuid.NewString()[:12]
	g.sessions[id] = req
	return &shared.Session{ID: id, URL: "https://checkout.example.test/" + id}, nil
}

// ParseWebhook accepts a JSON body {"type", "sessionId", "paymentIntentId"}
// signed with ValidWebhookSign.
func (g *FakeSessionGateway) ParseWebhook(payload []byte, signatureHeader string) (*shared.WebhookEvent, error) {
	if signatureHeader != ValidWebhookSign {
		return nil, errs.New("signature mismatch")
	}
	var body struct {
		Type            string `json:"type"`
		SessionID       string `json:"sessionId"`
		PaymentIntentID string `json:"paymentIntentId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, errs.Wrap(err, "decode event")
	}
	event := &shared.WebhookEvent{ID: "evt_" + body.SessionID, Type: body.Type}
	if body.Type == "checkout.session.completed" {
		event.Completed = &shared.CompletedSession{SessionID: body.SessionID, PaymentIntentID: body.PaymentIntentID}
	}
	return event, nil
}

type FakeMailer struct {
	mu   sync.Mutex
	sent []shared.Message
}

func (m *FakeMailer) Send(_ context.Context, msg shared.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *FakeMailer) Sent() []shared.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]shared.Message(nil), m.sent...)
}

func (m *FakeMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
}
