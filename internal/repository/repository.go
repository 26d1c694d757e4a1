package repository

import (
	"context"
	"time"

	"vrms-backend/internal/domain"
)

// Relational store contracts. Reads are snapshots: the returned structs are
// never registered anywhere for later change tracking, and updates are
// whole-row writes keyed by id (last writer wins; no version token).

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListAvailable(ctx context.Context) ([]domain.Vehicle, error)
	ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Vehicle, error)
	SetAvailability(ctx context.Context, id int32, available bool) error

	AddPhoto(ctx context.Context, p *domain.Photo) error
	ListPhotos(ctx context.Context, vehicleID int32) ([]domain.Photo, error)
	DeletePhoto(ctx context.Context, photoID int32) error
}

type CarRepository interface {
	Create(ctx context.Context, c *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Car, error)
	Update(ctx context.Context, c *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Car, error)
	ListAvailable(ctx context.Context) ([]domain.Car, error)
	ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Car, error)
}

type BusRepository interface {
	Create(ctx context.Context, b *domain.Bus) error
	GetByID(ctx context.Context, id int32) (*domain.Bus, error)
	GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Bus, error)
	Update(ctx context.Context, b *domain.Bus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Bus, error)
	ListAvailable(ctx context.Context) ([]domain.Bus, error)
	ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Bus, error)
}

type TruckRepository interface {
	Create(ctx context.Context, t *domain.Truck) error
	GetByID(ctx context.Context, id int32) (*domain.Truck, error)
	GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Truck, error)
	Update(ctx context.Context, t *domain.Truck) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Truck, error)
	ListAvailable(ctx context.Context) ([]domain.Truck, error)
	ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Truck, error)
}

type MotorcycleRepository interface {
	Create(ctx context.Context, m *domain.Motorcycle) error
	GetByID(ctx context.Context, id int32) (*domain.Motorcycle, error)
	GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Motorcycle, error)
	Update(ctx context.Context, m *domain.Motorcycle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Motorcycle, error)
	ListAvailable(ctx context.Context) ([]domain.Motorcycle, error)
	ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Motorcycle, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int32) error

	CreateVerificationCode(ctx context.Context, code *domain.VerificationCode) error
	GetVerificationCode(ctx context.Context, userID int32, code string) (*domain.VerificationCode, error)
	DeleteVerificationCode(ctx context.Context, id int32) error
	DeleteExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type AgentRepository interface {
	Create(ctx context.Context, a *domain.Agent) error
	GetByID(ctx context.Context, id int32) (*domain.Agent, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Agent, error)
	Update(ctx context.Context, a *domain.Agent) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Agent, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Reservation, error)
	ListActiveByVehicle(ctx context.Context, vehicleID int32) ([]domain.Reservation, error)
	ListInWindow(ctx context.Context, from, to time.Time) ([]domain.Reservation, error)
	ListOverdue(ctx context.Context, now time.Time) ([]domain.Reservation, error)

	GetWithCustomer(ctx context.Context, id int32) (*domain.ReservationWithCustomer, error)
	GetWithVehicle(ctx context.Context, id int32) (*domain.ReservationWithVehicle, error)

	MarkPickedUp(ctx context.Context, id int32) error
	MarkBroughtBack(ctx context.Context, id int32) error
}

type TripDetailsRepository interface {
	Create(ctx context.Context, td *domain.TripDetails) error
	GetByID(ctx context.Context, id int32) (*domain.TripDetails, error)
	GetByReservation(ctx context.Context, reservationID int32) (*domain.TripDetails, error)
	Update(ctx context.Context, td *domain.TripDetails) error
	Delete(ctx context.Context, id int32) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Payment, error)

	GetPendingByReservation(ctx context.Context, reservationID int32) (*domain.Payment, error)
	ListPendingInWindow(ctx context.Context, from, to time.Time) ([]domain.Payment, error)
	// ListConfirmedPendingCleanup returns paid, unrefunded payments that do
	// not yet have a receipt, oldest first. Consumed by the reconciliation
	// batch job.
	ListConfirmedPendingCleanup(ctx context.Context, limit int32) ([]domain.Payment, error)
	GetWithReservation(ctx context.Context, id int32) (*domain.PaymentWithReservation, error)

	MarkRefunded(ctx context.Context, id int32, refundID string, at time.Time) error
}

type ReceiptRepository interface {
	Create(ctx context.Context, r *domain.Receipt) error
	GetByID(ctx context.Context, id int32) (*domain.Receipt, error)
	GetByPayment(ctx context.Context, paymentID int32) (*domain.Receipt, error)
	Update(ctx context.Context, r *domain.Receipt) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Receipt, error)
}

type InsurancePolicyRepository interface {
	Create(ctx context.Context, p *domain.InsurancePolicy) error
	GetByID(ctx context.Context, id int32) (*domain.InsurancePolicy, error)
	GetByPolicyNumber(ctx context.Context, number string) (*domain.InsurancePolicy, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.InsurancePolicy, error)
	// Update writes every mutable field but never PolicyNumber.
	Update(ctx context.Context, p *domain.InsurancePolicy) error
	Delete(ctx context.Context, id int32) error
}

// Document store contracts. Every Update stamps UpdatedAt itself, so
// readers can always detect staleness. Duplicate documents per vehicle are
// permitted by this layer; dedup policy belongs to callers.

type VehicleHistoryRepository interface {
	Insert(ctx context.Context, h *domain.VehicleHistory) error
	GetByID(ctx context.Context, id string) (*domain.VehicleHistory, error)
	GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehicleHistory, error)
	ListByVehicleID(ctx context.Context, vehicleID int32) ([]domain.VehicleHistory, error)
	Update(ctx context.Context, h *domain.VehicleHistory) error
	Delete(ctx context.Context, id string) error
	DeleteByVehicleID(ctx context.Context, vehicleID int32) error
	List(ctx context.Context) ([]domain.VehicleHistory, error)
}

type VehiclePreConditionRepository interface {
	Insert(ctx context.Context, c *domain.VehiclePreCondition) error
	GetByID(ctx context.Context, id string) (*domain.VehiclePreCondition, error)
	GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehiclePreCondition, error)
	Update(ctx context.Context, c *domain.VehiclePreCondition) error
	Delete(ctx context.Context, id string) error
	DeleteByVehicleID(ctx context.Context, vehicleID int32) error
	List(ctx context.Context) ([]domain.VehiclePreCondition, error)
}

type VehiclePostConditionRepository interface {
	Insert(ctx context.Context, c *domain.VehiclePostCondition) error
	GetByID(ctx context.Context, id string) (*domain.VehiclePostCondition, error)
	GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehiclePostCondition, error)
	Update(ctx context.Context, c *domain.VehiclePostCondition) error
	Delete(ctx context.Context, id string) error
	DeleteByVehicleID(ctx context.Context, vehicleID int32) error
	List(ctx context.Context) ([]domain.VehiclePostCondition, error)
}

type VehicleRatingRepository interface {
	Insert(ctx context.Context, r *domain.VehicleRating) error
	GetByID(ctx context.Context, id string) (*domain.VehicleRating, error)
	GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehicleRating, error)
	ListByVehicleID(ctx context.Context, vehicleID int32) ([]domain.VehicleRating, error)
	Update(ctx context.Context, r *domain.VehicleRating) error
	Delete(ctx context.Context, id string) error
	DeleteByVehicleID(ctx context.Context, vehicleID int32) error
	List(ctx context.Context) ([]domain.VehicleRating, error)
}
