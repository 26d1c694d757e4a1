package jobs

import (
	"context"
	"errors"
	"time"

	"vrms-backend/internal/logger"
	"vrms-backend/internal/repository"
)

// MarkOverdueReservations finds reservations past their end date that were
// picked up but never brought back, and notifies the customer. Overdue is a
// computed property of the reservation dates, so nothing is written here;
// the job exists for the side effects.
func (jr *JobRunner) MarkOverdueReservations() {
	jr.runWithRecovery("MarkOverdueReservations", func() {
		ctx := context.Background()
		now := time.Now()

		overdue, err := jr.store.ListOverdue(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue reservations", "error", err)
			return
		}

		notified := 0
		for _, res := range overdue {
			rc, err := jr.store.GetWithCustomer(ctx, res.ID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				logger.Error("Failed to load customer for overdue reservation", "reservation_id", res.ID, "error", err)
				continue
			}

			if jr.services.Email != nil {
				if err := jr.services.Email.SendOverdueNotice(ctx, rc.Email, rc.Reservation); err != nil {
					logger.Error("Failed to send overdue notice", "reservation_id", res.ID, "error", err)
					continue
				}
			}
			notified++
		}
		logger.Info("Processed overdue reservations", "overdue", len(overdue), "notified", notified)
	})
}
