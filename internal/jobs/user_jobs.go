package jobs

import (
	"context"
	"time"

	"vrms-backend/internal/logger"
)

// PurgeExpiredVerificationCodes removes verification codes past their
// expiry so the table does not accumulate dead rows.
func (jr *JobRunner) PurgeExpiredVerificationCodes() {
	jr.runWithRecovery("PurgeExpiredVerificationCodes", func() {
		ctx := context.Background()

		deleted, err := jr.store.DeleteExpiredVerificationCodes(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to purge expired verification codes", "error", err)
			return
		}
		logger.Info("Purged expired verification codes", "deleted", deleted)
	})
}
