package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/logger"
	"vrms-backend/internal/repository"
)

var (
	ErrVehicleUnavailable  = errors.New("vehicle is not available")
	ErrVehicleAlreadyHeld  = errors.New("vehicle has an active reservation")
	ErrReservationPickedUp = errors.New("reservation has already been picked up")
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	vehicleRepo     repository.VehicleRepository
	tripRepo        repository.TripDetailsRepository
	historyRepo     repository.VehicleHistoryRepository
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	tripRepo repository.TripDetailsRepository,
	historyRepo repository.VehicleHistoryRepository,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		tripRepo:        tripRepo,
		historyRepo:     historyRepo,
	}
}

// CreateReservation checks availability and the single-active-reservation
// rule here in the caller; neither is a store constraint, so two
// concurrent creates can still race. That matches the current deployment.
func (s *reservationService) CreateReservation(ctx context.Context, customerID, vehicleID int32, start, end time.Time) (*domain.Reservation, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end date must not precede start date")
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsAvailable {
		return nil, ErrVehicleUnavailable
	}

	active, err := s.reservationRepo.ListActiveByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return nil, ErrVehicleAlreadyHeld
	}

	res := &domain.Reservation{
		CustomerID: customerID,
		VehicleID:  vehicleID,
		StartDate:  start,
		EndDate:    end,
	}
	if err := s.reservationRepo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	return res, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) GetReservationWithCustomer(ctx context.Context, id int32) (*domain.ReservationWithCustomer, error) {
	return s.reservationRepo.GetWithCustomer(ctx, id)
}

func (s *reservationService) GetReservationWithVehicle(ctx context.Context, id int32) (*domain.ReservationWithVehicle, error) {
	return s.reservationRepo.GetWithVehicle(ctx, id)
}

func (s *reservationService) CancelReservation(ctx context.Context, id int32) error {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if res.PickedUp {
		return ErrReservationPickedUp
	}
	return s.reservationRepo.Delete(ctx, id)
}

// MarkPickedUp flips the pickup toggle and takes the vehicle off the
// available list. Two writes, one store, no shared transaction; if the
// second fails the pickup stays recorded.
func (s *reservationService) MarkPickedUp(ctx context.Context, id int32) (*domain.Reservation, error) {
	if err := s.reservationRepo.MarkPickedUp(ctx, id); err != nil {
		return nil, err
	}
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.SetAvailability(ctx, res.VehicleID, false); err != nil {
		logger.ErrorContext(ctx, "Pickup recorded but vehicle availability not updated", "reservation_id", id, "vehicle_id", res.VehicleID, "error", err)
		return nil, err
	}
	return res, nil
}

// MarkBroughtBack does not require a prior pickup; the store permits the
// direct transition and callers depend on that today. After the toggle it
// returns the vehicle to the available list and appends a history
// document in the second store (independent commit, logged on failure).
func (s *reservationService) MarkBroughtBack(ctx context.Context, id int32) (*domain.Reservation, error) {
	if err := s.reservationRepo.MarkBroughtBack(ctx, id); err != nil {
		return nil, err
	}
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.SetAvailability(ctx, res.VehicleID, true); err != nil {
		logger.ErrorContext(ctx, "Return recorded but vehicle availability not updated", "reservation_id", id, "vehicle_id", res.VehicleID, "error", err)
		return nil, err
	}

	history := &domain.VehicleHistory{
		VehicleID: res.VehicleID,
		Note:      fmt.Sprintf("Returned from reservation %d", res.ID),
	}
	if err := s.historyRepo.Insert(ctx, history); err != nil {
		// Document store write is a second, independent commit. The return
		// stands; the missing history entry is surfaced in the log only.
		logger.ErrorContext(ctx, "Return recorded but history document not written", "reservation_id", id, "vehicle_id", res.VehicleID, "error", err)
	}
	return res, nil
}

func (s *reservationService) ListCalendar(ctx context.Context, from, to time.Time) ([]CalendarEntry, error) {
	reservations, err := s.reservationRepo.ListInWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}
	entries := make([]CalendarEntry, 0, len(reservations))
	for _, res := range reservations {
		entries = append(entries, CalendarEntry{Reservation: res, Status: res.Status()})
	}
	return entries, nil
}

func (s *reservationService) ListCustomerReservations(ctx context.Context, customerID int32) ([]domain.Reservation, error) {
	return s.reservationRepo.ListByCustomer(ctx, customerID)
}

func (s *reservationService) RecordTripDetails(ctx context.Context, td *domain.TripDetails) error {
	if _, err := s.reservationRepo.GetByID(ctx, td.ReservationID); err != nil {
		return err
	}
	existing, err := s.tripRepo.GetByReservation(ctx, td.ReservationID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil {
		td.ID = existing.ID
		return s.tripRepo.Update(ctx, td)
	}
	return s.tripRepo.Create(ctx, td)
}
