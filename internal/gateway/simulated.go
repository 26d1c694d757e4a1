package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// SimulatedGateway is an in-process stand-in for the hosted gateway, used
// in development and tests. Identifiers follow the hosted gateway's
// pi_/re_ prefixes so the correlation fields look the same downstream.
type SimulatedGateway struct {
	mu      sync.Mutex
	intents map[string]*Intent // idempotency key -> intent
	refunds map[string]string  // idempotency key -> refund id
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{
		intents: make(map[string]*Intent),
		refunds: make(map[string]string),
	}
}

func (g *SimulatedGateway) CreateIntent(ctx context.Context, amountCents int32, currency, idempotencyKey string) (*Intent, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("invalid amount: %d", amountCents)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.intents[idempotencyKey]; ok {
		return existing, nil
	}
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	intent := &Intent{
		PaymentIntentID: "pi_" + id,
		ClientSecret:    "pi_" + id + "_secret_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Status:          "requires_payment_method",
	}
	g.intents[idempotencyKey] = intent
	return intent, nil
}

func (g *SimulatedGateway) Refund(ctx context.Context, paymentIntentID, idempotencyKey string) (string, error) {
	if paymentIntentID == "" {
		return "", fmt.Errorf("missing payment intent id")
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.refunds[idempotencyKey]; ok {
		return existing, nil
	}
	refundID := "re_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	g.refunds[idempotencyKey] = refundID
	return refundID, nil
}
