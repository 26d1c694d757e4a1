package service

import (
	"context"
	"errors"
	"fmt"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/logger"
	"vrms-backend/internal/repository"
)

// ErrHardDeleteDisabled is returned when a caller tries to delete a car or
// motorcycle while the allow_hard_delete toggle is off.
var ErrHardDeleteDisabled = errors.New("hard delete is disabled for this vehicle kind")

type fleetService struct {
	vehicleRepo    repository.VehicleRepository
	carRepo        repository.CarRepository
	busRepo        repository.BusRepository
	truckRepo      repository.TruckRepository
	motorcycleRepo repository.MotorcycleRepository

	historyRepo repository.VehicleHistoryRepository
	preRepo     repository.VehiclePreConditionRepository
	postRepo    repository.VehiclePostConditionRepository
	ratingRepo  repository.VehicleRatingRepository

	allowHardDelete bool
}

func NewFleetService(
	vehicleRepo repository.VehicleRepository,
	carRepo repository.CarRepository,
	busRepo repository.BusRepository,
	truckRepo repository.TruckRepository,
	motorcycleRepo repository.MotorcycleRepository,
	historyRepo repository.VehicleHistoryRepository,
	preRepo repository.VehiclePreConditionRepository,
	postRepo repository.VehiclePostConditionRepository,
	ratingRepo repository.VehicleRatingRepository,
	allowHardDelete bool,
) FleetService {
	return &fleetService{
		vehicleRepo:     vehicleRepo,
		carRepo:         carRepo,
		busRepo:         busRepo,
		truckRepo:       truckRepo,
		motorcycleRepo:  motorcycleRepo,
		historyRepo:     historyRepo,
		preRepo:         preRepo,
		postRepo:        postRepo,
		ratingRepo:      ratingRepo,
		allowHardDelete: allowHardDelete,
	}
}

func (s *fleetService) AddCar(ctx context.Context, v *domain.Vehicle, c *domain.Car) error {
	v.Kind = domain.VehicleKindCar
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	c.VehicleID = v.ID
	if err := s.carRepo.Create(ctx, c); err != nil {
		return fmt.Errorf("create car row: %w", err)
	}
	return nil
}

func (s *fleetService) AddBus(ctx context.Context, v *domain.Vehicle, b *domain.Bus) error {
	v.Kind = domain.VehicleKindBus
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	b.VehicleID = v.ID
	if err := s.busRepo.Create(ctx, b); err != nil {
		return fmt.Errorf("create bus row: %w", err)
	}
	return nil
}

func (s *fleetService) AddTruck(ctx context.Context, v *domain.Vehicle, t *domain.Truck) error {
	v.Kind = domain.VehicleKindTruck
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	t.VehicleID = v.ID
	if err := s.truckRepo.Create(ctx, t); err != nil {
		return fmt.Errorf("create truck row: %w", err)
	}
	return nil
}

func (s *fleetService) AddMotorcycle(ctx context.Context, v *domain.Vehicle, m *domain.Motorcycle) error {
	v.Kind = domain.VehicleKindMotorcycle
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	m.VehicleID = v.ID
	if err := s.motorcycleRepo.Create(ctx, m); err != nil {
		return fmt.Errorf("create motorcycle row: %w", err)
	}
	return nil
}

func (s *fleetService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.vehicleRepo.ListPhotos(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Photos = photos
	return v, nil
}

func (s *fleetService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	return s.vehicleRepo.Update(ctx, v)
}

// DeleteVehicle removes the relational rows and then the vehicle's
// documents. The two stores do not share a transaction: if the document
// cleanup fails after the relational delete committed, the orphaned
// documents are reported to the caller, not rolled back.
func (s *fleetService) DeleteVehicle(ctx context.Context, id int32) error {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if (v.Kind == domain.VehicleKindCar || v.Kind == domain.VehicleKindMotorcycle) && !s.allowHardDelete {
		return ErrHardDeleteDisabled
	}

	// Subtype rows and photos cascade with the vehicle row.
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}

	// Second, independent store. First failure wins but cleanup continues
	// so one bad collection does not strand the other three.
	var docErr error
	for _, del := range []func(context.Context, int32) error{
		s.historyRepo.DeleteByVehicleID,
		s.preRepo.DeleteByVehicleID,
		s.postRepo.DeleteByVehicleID,
		s.ratingRepo.DeleteByVehicleID,
	} {
		if err := del(ctx, id); err != nil && docErr == nil {
			docErr = err
		}
	}
	if docErr != nil {
		logger.ErrorContext(ctx, "Vehicle documents not fully removed after relational delete", "vehicle_id", id, "error", docErr)
		return fmt.Errorf("vehicle %d deleted but document cleanup failed: %w", id, docErr)
	}
	return nil
}

func (s *fleetService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *fleetService) ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListAvailable(ctx)
}

func (s *fleetService) ListVehiclesByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListByFuelType(ctx, fuel)
}

func (s *fleetService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *fleetService) ListAvailableCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.ListAvailable(ctx)
}

func (s *fleetService) ListCarsByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Car, error) {
	return s.carRepo.ListByFuelType(ctx, fuel)
}

func (s *fleetService) ListBuses(ctx context.Context) ([]domain.Bus, error) {
	return s.busRepo.List(ctx)
}

func (s *fleetService) ListAvailableBuses(ctx context.Context) ([]domain.Bus, error) {
	return s.busRepo.ListAvailable(ctx)
}

func (s *fleetService) ListBusesByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Bus, error) {
	return s.busRepo.ListByFuelType(ctx, fuel)
}

func (s *fleetService) ListTrucks(ctx context.Context) ([]domain.Truck, error) {
	return s.truckRepo.List(ctx)
}

func (s *fleetService) ListAvailableTrucks(ctx context.Context) ([]domain.Truck, error) {
	return s.truckRepo.ListAvailable(ctx)
}

func (s *fleetService) ListTrucksByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Truck, error) {
	return s.truckRepo.ListByFuelType(ctx, fuel)
}

func (s *fleetService) ListMotorcycles(ctx context.Context) ([]domain.Motorcycle, error) {
	return s.motorcycleRepo.List(ctx)
}

func (s *fleetService) ListAvailableMotorcycles(ctx context.Context) ([]domain.Motorcycle, error) {
	return s.motorcycleRepo.ListAvailable(ctx)
}

func (s *fleetService) ListMotorcyclesByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Motorcycle, error) {
	return s.motorcycleRepo.ListByFuelType(ctx, fuel)
}

func (s *fleetService) AddPhoto(ctx context.Context, p *domain.Photo) error {
	if _, err := s.vehicleRepo.GetByID(ctx, p.VehicleID); err != nil {
		return err
	}
	return s.vehicleRepo.AddPhoto(ctx, p)
}

func (s *fleetService) RemovePhoto(ctx context.Context, photoID int32) error {
	return s.vehicleRepo.DeletePhoto(ctx, photoID)
}
