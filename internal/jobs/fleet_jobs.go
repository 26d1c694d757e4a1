package jobs

import (
	"context"

	"vrms-backend/internal/logger"
)

// PruneOrphanVehicleDocuments removes documents whose vehicle row no
// longer exists. The two stores share no transaction, so a vehicle delete
// whose document cleanup failed leaves orphans behind; this job is the
// compensating sweep.
func (jr *JobRunner) PruneOrphanVehicleDocuments() {
	jr.runWithRecovery("PruneOrphanVehicleDocuments", func() {
		ctx := context.Background()

		vehicles, err := jr.store.VehicleRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list vehicles for document pruning", "error", err)
			return
		}
		known := make(map[int32]struct{}, len(vehicles))
		for _, v := range vehicles {
			known[v.ID] = struct{}{}
		}

		removed := 0

		if histories, err := jr.docs.VehicleHistoryRepository.List(ctx); err != nil {
			logger.Error("Failed to list history documents", "error", err)
		} else {
			for _, d := range histories {
				if _, ok := known[d.VehicleID]; ok {
					continue
				}
				if err := jr.docs.VehicleHistoryRepository.Delete(ctx, d.ID); err != nil {
					logger.Error("Failed to prune history document", "id", d.ID, "vehicle_id", d.VehicleID, "error", err)
					continue
				}
				removed++
			}
		}

		if pres, err := jr.docs.VehiclePreConditionRepository.List(ctx); err != nil {
			logger.Error("Failed to list pre-condition documents", "error", err)
		} else {
			for _, d := range pres {
				if _, ok := known[d.VehicleID]; ok {
					continue
				}
				if err := jr.docs.VehiclePreConditionRepository.Delete(ctx, d.ID); err != nil {
					logger.Error("Failed to prune pre-condition document", "id", d.ID, "vehicle_id", d.VehicleID, "error", err)
					continue
				}
				removed++
			}
		}

		if posts, err := jr.docs.VehiclePostConditionRepository.List(ctx); err != nil {
			logger.Error("Failed to list post-condition documents", "error", err)
		} else {
			for _, d := range posts {
				if _, ok := known[d.VehicleID]; ok {
					continue
				}
				if err := jr.docs.VehiclePostConditionRepository.Delete(ctx, d.ID); err != nil {
					logger.Error("Failed to prune post-condition document", "id", d.ID, "vehicle_id", d.VehicleID, "error", err)
					continue
				}
				removed++
			}
		}

		if ratings, err := jr.docs.VehicleRatingRepository.List(ctx); err != nil {
			logger.Error("Failed to list rating documents", "error", err)
		} else {
			for _, d := range ratings {
				if _, ok := known[d.VehicleID]; ok {
					continue
				}
				if err := jr.docs.VehicleRatingRepository.Delete(ctx, d.ID); err != nil {
					logger.Error("Failed to prune rating document", "id", d.ID, "vehicle_id", d.VehicleID, "error", err)
					continue
				}
				removed++
			}
		}

		logger.Info("Pruned orphan vehicle documents", "vehicles", len(vehicles), "removed", removed)
	})
}
