package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, reservation_id, amount_cents, status, is_refunded, refunded_at, stripe_refund_id, stripe_payment_intent_id, stripe_client_secret, stripe_status, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }, p *domain.Payment) error {
	return row.Scan(&p.ID, &p.ReservationID, &p.AmountCents, &p.Status, &p.IsRefunded, &p.RefundedAt, &p.StripeRefundID, &p.StripePaymentIntentID, &p.StripeClientSecret, &p.StripeStatus, &p.CreatedAt, &p.UpdatedAt)
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (reservation_id, amount_cents, status, is_refunded, stripe_payment_intent_id, stripe_client_secret, stripe_status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, p.ReservationID, p.AmountCents, p.Status, p.IsRefunded, p.StripePaymentIntentID, p.StripeClientSecret, p.StripeStatus, now, now).Scan(&p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := scanPayment(r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id), p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the whole mutable row. Status strings are persisted
// as given; transition rules live in the payment service.
func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET reservation_id=$1, amount_cents=$2, status=$3, is_refunded=$4, refunded_at=$5, stripe_refund_id=$6, stripe_payment_intent_id=$7, stripe_client_secret=$8, stripe_status=$9, updated_at=$10 WHERE id=$11`
	result, err := r.db.ExecContext(ctx, query, p.ReservationID, p.AmountCents, p.Status, p.IsRefunded, p.RefundedAt, p.StripeRefundID, p.StripePaymentIntentID, p.StripeClientSecret, p.StripeStatus, time.Now(), p.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	return err
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	return r.queryPayments(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
}

func (r *paymentRepository) GetPendingByReservation(ctx context.Context, reservationID int32) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE reservation_id = $1 AND status = $2 ORDER BY created_at LIMIT 1`
	err := scanPayment(r.db.QueryRowContext(ctx, query, reservationID, domain.PaymentStatusPending), p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) ListPendingInWindow(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at`
	return r.queryPayments(ctx, query, domain.PaymentStatusPending, from, to)
}

func (r *paymentRepository) ListConfirmedPendingCleanup(ctx context.Context, limit int32) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments p
	          WHERE p.status = $1 AND p.is_refunded = false
	            AND NOT EXISTS (SELECT 1 FROM receipts rc WHERE rc.payment_id = p.id)
	          ORDER BY p.updated_at LIMIT $2`
	return r.queryPayments(ctx, query, domain.PaymentStatusPaid, limit)
}

// GetWithReservation joins payment -> reservation in one round trip.
func (r *paymentRepository) GetWithReservation(ctx context.Context, id int32) (*domain.PaymentWithReservation, error) {
	out := &domain.PaymentWithReservation{}
	query := `SELECT p.id, p.reservation_id, p.amount_cents, p.status, p.is_refunded, p.refunded_at, p.stripe_refund_id, p.stripe_payment_intent_id, p.stripe_client_secret, p.stripe_status, p.created_at, p.updated_at,
	                 r.id, r.customer_id, r.vehicle_id, r.start_date, r.end_date, r.picked_up, r.brought_back, r.created_at, r.updated_at
	          FROM payments p
	          JOIN reservations r ON r.id = p.reservation_id
	          WHERE p.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&out.Payment.ID, &out.Payment.ReservationID, &out.Payment.AmountCents, &out.Payment.Status, &out.Payment.IsRefunded, &out.Payment.RefundedAt, &out.Payment.StripeRefundID, &out.Payment.StripePaymentIntentID, &out.Payment.StripeClientSecret, &out.Payment.StripeStatus, &out.Payment.CreatedAt, &out.Payment.UpdatedAt,
		&out.Reservation.ID, &out.Reservation.CustomerID, &out.Reservation.VehicleID, &out.Reservation.StartDate, &out.Reservation.EndDate, &out.Reservation.PickedUp, &out.Reservation.BroughtBack, &out.Reservation.CreatedAt, &out.Reservation.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRefunded records the refund side-state without touching status.
func (r *paymentRepository) MarkRefunded(ctx context.Context, id int32, refundID string, at time.Time) error {
	query := `UPDATE payments SET is_refunded = true, refunded_at = $1, stripe_refund_id = $2, updated_at = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, at, refundID, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *paymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
