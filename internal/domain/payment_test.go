package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPaymentTransition(t *testing.T) {
	allowed := [][2]PaymentStatus{
		{PaymentStatusPending, PaymentStatusPrepaid},
		{PaymentStatusPrepaid, PaymentStatusPaid},
	}
	statuses := []PaymentStatus{PaymentStatusPending, PaymentStatusPrepaid, PaymentStatusPaid}

	for _, from := range statuses {
		for _, to := range statuses {
			want := false
			for _, a := range allowed {
				if a[0] == from && a[1] == to {
					want = true
				}
			}
			assert.Equal(t, want, ValidPaymentTransition(from, to), "%s -> %s", from, to)
		}
	}
}
