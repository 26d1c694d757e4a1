package jobs

import (
	"context"
	"fmt"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/logger"
)

const reconcileBatchSize = 100

// ReconcilePaidPayments issues receipts for paid payments that still lack
// one. This is the follow-up consumer of the confirmed-payments query: a
// settlement whose receipt write failed is repaired here on the next run.
func (jr *JobRunner) ReconcilePaidPayments() {
	jr.runWithRecovery("ReconcilePaidPayments", func() {
		ctx := context.Background()

		payments, err := jr.store.ListConfirmedPendingCleanup(ctx, reconcileBatchSize)
		if err != nil {
			logger.Error("Failed to list payments pending cleanup", "error", err)
			return
		}

		issued := 0
		for _, p := range payments {
			receipt := &domain.Receipt{
				PaymentID:   p.ID,
				Number:      fmt.Sprintf("RC-%d-%s", p.ID, time.Now().Format("20060102")),
				AmountCents: p.AmountCents,
				IssuedAt:    time.Now(),
			}
			if err := jr.store.ReceiptRepository.Create(ctx, receipt); err != nil {
				logger.Error("Failed to issue reconciliation receipt", "payment_id", p.ID, "error", err)
				continue
			}
			issued++
			jr.emailReceipt(ctx, p, receipt)
		}
		logger.Info("Reconciled paid payments", "examined", len(payments), "receipts_issued", issued)
	})
}

// emailReceipt delivers the receipt to the paying customer. Delivery is
// best effort; the receipt row already committed and a failed send is not
// retried by this job.
func (jr *JobRunner) emailReceipt(ctx context.Context, p domain.Payment, receipt *domain.Receipt) {
	if jr.services.Email == nil || p.ReservationID == nil {
		return
	}
	rc, err := jr.store.GetWithCustomer(ctx, *p.ReservationID)
	if err != nil {
		logger.Error("Failed to load customer for receipt email", "payment_id", p.ID, "reservation_id", *p.ReservationID, "error", err)
		return
	}
	if err := jr.services.Email.SendReceipt(ctx, rc.Email, receipt); err != nil {
		logger.Error("Failed to email receipt", "payment_id", p.ID, "error", err)
	}
}
