package gateway

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedGatewayCreateIntent(t *testing.T) {
	g := NewSimulatedGateway()
	ctx := context.Background()

	intent, err := g.CreateIntent(ctx, 5000, "usd", "key-1")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(intent.PaymentIntentID, "pi_"))
	assert.True(t, strings.HasPrefix(intent.ClientSecret, intent.PaymentIntentID+"_secret_"))
	assert.Equal(t, "requires_payment_method", intent.Status)

	t.Run("Same idempotency key returns the same intent", func(t *testing.T) {
		again, err := g.CreateIntent(ctx, 5000, "usd", "key-1")
		assert.NoError(t, err)
		assert.Same(t, intent, again)
	})

	t.Run("Different key mints a new intent", func(t *testing.T) {
		other, err := g.CreateIntent(ctx, 5000, "usd", "key-2")
		assert.NoError(t, err)
		assert.NotEqual(t, intent.PaymentIntentID, other.PaymentIntentID)
	})

	t.Run("Rejects non-positive amounts", func(t *testing.T) {
		_, err := g.CreateIntent(ctx, 0, "usd", "key-3")
		assert.Error(t, err)
		_, err = g.CreateIntent(ctx, -100, "usd", "key-4")
		assert.Error(t, err)
	})
}

func TestSimulatedGatewayRefund(t *testing.T) {
	g := NewSimulatedGateway()
	ctx := context.Background()

	refundID, err := g.Refund(ctx, "pi_abc", "rkey-1")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(refundID, "re_"))

	t.Run("Same idempotency key returns the same refund", func(t *testing.T) {
		again, err := g.Refund(ctx, "pi_abc", "rkey-1")
		assert.NoError(t, err)
		assert.Equal(t, refundID, again)
	})

	t.Run("Missing intent id", func(t *testing.T) {
		_, err := g.Refund(ctx, "", "rkey-2")
		assert.Error(t, err)
	})
}
