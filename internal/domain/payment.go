package domain

import "time"

// PaymentStatus is the closed vocabulary for the payment lifecycle. The
// wire strings match what the booking front-end already consumes.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPrepaid PaymentStatus = "pre-paid"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ValidPaymentTransition reports whether a status change follows the
// pending -> pre-paid -> paid flow. Refunds do not change status; they
// set the refund side-state instead.
func ValidPaymentTransition(from, to PaymentStatus) bool {
	switch from {
	case PaymentStatusPending:
		return to == PaymentStatusPrepaid
	case PaymentStatusPrepaid:
		return to == PaymentStatusPaid
	default:
		return false
	}
}

// Payment belongs to at most one reservation. The Stripe* fields are
// opaque correlation identifiers owned by the payment gateway; this
// system only stores them.
type Payment struct {
	ID            int32         `json:"id"`
	ReservationID *int32        `json:"reservation_id,omitempty"`
	AmountCents   int32         `json:"amount_cents"`
	Status        PaymentStatus `json:"status"`

	IsRefunded     bool       `json:"is_refunded"`
	RefundedAt     *time.Time `json:"refunded_at,omitempty"`
	StripeRefundID *string    `json:"stripe_refund_id,omitempty"`

	StripePaymentIntentID string `json:"stripe_payment_intent_id"`
	StripeClientSecret    string `json:"-"`
	StripeStatus          string `json:"stripe_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentWithReservation is the denormalized read joining
// Payment -> Reservation.
type PaymentWithReservation struct {
	Payment     Payment     `json:"payment"`
	Reservation Reservation `json:"reservation"`
}

// Receipt is generated once a payment settles. It is an immutable
// business record aside from corrective updates.
type Receipt struct {
	ID          int32     `json:"id"`
	PaymentID   int32     `json:"payment_id"`
	Number      string    `json:"number"`
	AmountCents int32     `json:"amount_cents"`
	IssuedAt    time.Time `json:"issued_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
