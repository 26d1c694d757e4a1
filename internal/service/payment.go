package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/gateway"
	"vrms-backend/internal/logger"
	"vrms-backend/internal/repository"
)

var (
	ErrInvalidTransition = errors.New("payment status transition not allowed")
	ErrAlreadyRefunded   = errors.New("payment is already refunded")
)

type paymentService struct {
	paymentRepo     repository.PaymentRepository
	receiptRepo     repository.ReceiptRepository
	reservationRepo repository.ReservationRepository
	vehicleRepo     repository.VehicleRepository
	gw              gateway.PaymentGateway
	currency        string
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	receiptRepo repository.ReceiptRepository,
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	gw gateway.PaymentGateway,
	currency string,
) PaymentService {
	return &paymentService{
		paymentRepo:     paymentRepo,
		receiptRepo:     receiptRepo,
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		gw:              gw,
		currency:        currency,
	}
}

// CreatePrepayment opens a pending payment for the vehicle's prepay fee
// and registers a gateway intent. Only the opaque correlation ids from
// the gateway are stored; all ledger correctness is the gateway's.
func (s *paymentService) CreatePrepayment(ctx context.Context, reservationID int32) (*domain.Payment, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, res.VehicleID)
	if err != nil {
		return nil, err
	}

	// The key is derived from the reservation so a retried create folds
	// into the same gateway intent instead of opening a second one.
	intent, err := s.gw.CreateIntent(ctx, vehicle.PrepayFeeCents, s.currency, fmt.Sprintf("prepay-%d", res.ID))
	if err != nil {
		return nil, fmt.Errorf("create gateway intent: %w", err)
	}

	payment := &domain.Payment{
		ReservationID:         &res.ID,
		AmountCents:           vehicle.PrepayFeeCents,
		Status:                domain.PaymentStatusPending,
		StripePaymentIntentID: intent.PaymentIntentID,
		StripeClientSecret:    intent.ClientSecret,
		StripeStatus:          intent.Status,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) ConfirmPrepayment(ctx context.Context, paymentID int32) (*domain.Payment, error) {
	return s.transition(ctx, paymentID, domain.PaymentStatusPrepaid)
}

// ConfirmFinalSettlement moves the payment to paid and issues its receipt.
// The receipt write is a second commit; when it fails the paid status
// stands and the reconciliation job creates the receipt later.
func (s *paymentService) ConfirmFinalSettlement(ctx context.Context, paymentID int32) (*domain.Payment, error) {
	payment, err := s.transition(ctx, paymentID, domain.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}

	receipt := &domain.Receipt{
		PaymentID:   payment.ID,
		Number:      fmt.Sprintf("RC-%d-%s", payment.ID, time.Now().Format("20060102")),
		AmountCents: payment.AmountCents,
		IssuedAt:    time.Now(),
	}
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		logger.ErrorContext(ctx, "Payment settled but receipt not issued; left for reconciliation", "payment_id", payment.ID, "error", err)
	}
	return payment, nil
}

func (s *paymentService) transition(ctx context.Context, paymentID int32, to domain.PaymentStatus) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !domain.ValidPaymentTransition(payment.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, payment.Status, to)
	}
	payment.Status = to
	payment.StripeStatus = "succeeded"
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Refund issues a gateway refund and records the side-state. The payment
// status itself never changes on refund.
func (s *paymentService) Refund(ctx context.Context, paymentID int32) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.IsRefunded {
		return nil, ErrAlreadyRefunded
	}

	refundID, err := s.gw.Refund(ctx, payment.StripePaymentIntentID, fmt.Sprintf("refund-%d", payment.ID))
	if err != nil {
		return nil, fmt.Errorf("gateway refund: %w", err)
	}

	now := time.Now()
	if err := s.paymentRepo.MarkRefunded(ctx, payment.ID, refundID, now); err != nil {
		return nil, err
	}
	payment.IsRefunded = true
	payment.RefundedAt = &now
	payment.StripeRefundID = &refundID
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id int32) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentService) GetPendingByReservation(ctx context.Context, reservationID int32) (*domain.Payment, error) {
	return s.paymentRepo.GetPendingByReservation(ctx, reservationID)
}

func (s *paymentService) GetPaymentWithReservation(ctx context.Context, id int32) (*domain.PaymentWithReservation, error) {
	return s.paymentRepo.GetWithReservation(ctx, id)
}

func (s *paymentService) ListPendingPayments(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	return s.paymentRepo.ListPendingInWindow(ctx, from, to)
}

func (s *paymentService) GetReceiptForPayment(ctx context.Context, paymentID int32) (*domain.Receipt, error) {
	return s.receiptRepo.GetByPayment(ctx, paymentID)
}
