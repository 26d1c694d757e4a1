// Package gateway defines the payment-gateway collaborator boundary. The
// backend never implements gateway protocol logic; it only stores the
// opaque correlation identifiers a gateway returns.
package gateway

import "context"

// Intent is the gateway-side record correlated with a local payment.
// All three fields are opaque to this system.
type Intent struct {
	PaymentIntentID string
	ClientSecret    string
	Status          string
}

// PaymentGateway creates and refunds payment intents. Implementations
// must treat the idempotency key as a dedup token: repeating a call with
// the same key must not create a second gateway-side record.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int32, currency, idempotencyKey string) (*Intent, error)
	Refund(ctx context.Context, paymentIntentID, idempotencyKey string) (refundID string, err error)
}
