package shared

import (
	"context"

	"course-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
}

type Order struct {
	ID          string
	AmountMinor int64
	Currency    string
}

// OrderGateway creates provider orders that are confirmed by a signed redirect.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type SessionRequest struct {
	TransactionID uuid.UUID
	CourseName    string
	// PriceID is the pre-registered catalog price. It is used only when no
	// discount applies; otherwise AmountMinor is charged as inline price data.
	PriceID       string
	AmountMinor   int64
	Currency      string
	CustomerEmail string
}

type Session struct {
	ID  string
	URL string
}

// CompletedSession is the verified content of a completed checkout event.
type CompletedSession struct {
	SessionID       string
	PaymentIntentID string
}

type WebhookEvent struct {
	ID        string
	Type      string
	Completed *CompletedSession
}

// SessionGateway creates hosted checkout sessions confirmed by webhook.
type SessionGateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
	ParseWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error)
}

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type RateFetcher interface {
	Fetch(ctx context.Context) (*RateTable, error)
}

type RateCache interface {
	Get(ctx context.Context) (*RateTable, error)
	Set(ctx context.Context, table RateTable) error
}

var ErrCacheMiss = errs.New("cache miss")
