package service

import (
	"context"
	"errors"
	"fmt"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
	"vrms-backend/internal/utils"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5 stars")

type conditionService struct {
	preRepo     repository.VehiclePreConditionRepository
	postRepo    repository.VehiclePostConditionRepository
	historyRepo repository.VehicleHistoryRepository
	ratingRepo  repository.VehicleRatingRepository
	costs       utils.DamageCosts
}

func NewConditionService(
	preRepo repository.VehiclePreConditionRepository,
	postRepo repository.VehiclePostConditionRepository,
	historyRepo repository.VehicleHistoryRepository,
	ratingRepo repository.VehicleRatingRepository,
	costs utils.DamageCosts,
) ConditionService {
	return &conditionService{
		preRepo:     preRepo,
		postRepo:    postRepo,
		historyRepo: historyRepo,
		ratingRepo:  ratingRepo,
		costs:       costs,
	}
}

func (s *conditionService) RecordPreCondition(ctx context.Context, c *domain.VehiclePreCondition) error {
	return s.preRepo.Insert(ctx, c)
}

// RecordPostCondition compares the return inspection against the latest
// pre-condition baseline for the vehicle. Only damage that is new since
// pickup is billed into TotalCostCents. Without a baseline every damage
// flag counts as new.
func (s *conditionService) RecordPostCondition(ctx context.Context, c *domain.VehiclePostCondition) (utils.DamageDiff, error) {
	var baseline domain.DamageReport
	pre, err := s.preRepo.GetByVehicleID(ctx, c.VehicleID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return utils.DamageDiff{}, err
	}
	if pre != nil {
		baseline = pre.Damage
	}

	diff := utils.DiffDamage(baseline, c.Damage)
	c.TotalCostCents = utils.DamageCost(diff, s.costs)

	if err := s.postRepo.Insert(ctx, c); err != nil {
		return utils.DamageDiff{}, fmt.Errorf("insert post-condition: %w", err)
	}
	return diff, nil
}

func (s *conditionService) GetPreCondition(ctx context.Context, vehicleID int32) (*domain.VehiclePreCondition, error) {
	return s.preRepo.GetByVehicleID(ctx, vehicleID)
}

func (s *conditionService) GetPostCondition(ctx context.Context, vehicleID int32) (*domain.VehiclePostCondition, error) {
	return s.postRepo.GetByVehicleID(ctx, vehicleID)
}

func (s *conditionService) AppendHistory(ctx context.Context, h *domain.VehicleHistory) error {
	return s.historyRepo.Insert(ctx, h)
}

func (s *conditionService) ListHistory(ctx context.Context, vehicleID int32) ([]domain.VehicleHistory, error) {
	return s.historyRepo.ListByVehicleID(ctx, vehicleID)
}

func (s *conditionService) RateVehicle(ctx context.Context, r *domain.VehicleRating) error {
	if r.Stars < 1 || r.Stars > 5 {
		return ErrInvalidRating
	}
	return s.ratingRepo.Insert(ctx, r)
}

func (s *conditionService) ListRatings(ctx context.Context, vehicleID int32) ([]domain.VehicleRating, error) {
	return s.ratingRepo.ListByVehicleID(ctx, vehicleID)
}
