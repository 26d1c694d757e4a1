package service

import (
	"context"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/utils"
)

type FleetService interface {
	AddCar(ctx context.Context, v *domain.Vehicle, c *domain.Car) error
	AddBus(ctx context.Context, v *domain.Vehicle, b *domain.Bus) error
	AddTruck(ctx context.Context, v *domain.Vehicle, t *domain.Truck) error
	AddMotorcycle(ctx context.Context, v *domain.Vehicle, m *domain.Motorcycle) error

	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	// DeleteVehicle removes the vehicle row, its subtype row and photos,
	// then its documents in the second store. Car and Motorcycle deletion
	// is gated by the allow_hard_delete config toggle.
	DeleteVehicle(ctx context.Context, id int32) error

	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListVehiclesByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Vehicle, error)

	// Per-kind listings mirror the vehicle listings; availability and
	// fuel-type filtering happen in the database, not in memory.
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListAvailableCars(ctx context.Context) ([]domain.Car, error)
	ListCarsByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Car, error)
	ListBuses(ctx context.Context) ([]domain.Bus, error)
	ListAvailableBuses(ctx context.Context) ([]domain.Bus, error)
	ListBusesByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Bus, error)
	ListTrucks(ctx context.Context) ([]domain.Truck, error)
	ListAvailableTrucks(ctx context.Context) ([]domain.Truck, error)
	ListTrucksByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Truck, error)
	ListMotorcycles(ctx context.Context) ([]domain.Motorcycle, error)
	ListAvailableMotorcycles(ctx context.Context) ([]domain.Motorcycle, error)
	ListMotorcyclesByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Motorcycle, error)

	AddPhoto(ctx context.Context, p *domain.Photo) error
	RemovePhoto(ctx context.Context, photoID int32) error
}

type ReservationService interface {
	CreateReservation(ctx context.Context, customerID, vehicleID int32, start, end time.Time) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	GetReservationWithCustomer(ctx context.Context, id int32) (*domain.ReservationWithCustomer, error)
	GetReservationWithVehicle(ctx context.Context, id int32) (*domain.ReservationWithVehicle, error)
	CancelReservation(ctx context.Context, id int32) error

	MarkPickedUp(ctx context.Context, id int32) (*domain.Reservation, error)
	MarkBroughtBack(ctx context.Context, id int32) (*domain.Reservation, error)

	ListCalendar(ctx context.Context, from, to time.Time) ([]CalendarEntry, error)
	ListCustomerReservations(ctx context.Context, customerID int32) ([]domain.Reservation, error)

	RecordTripDetails(ctx context.Context, td *domain.TripDetails) error
}

// CalendarEntry is the denormalized row the booking calendar renders.
type CalendarEntry struct {
	Reservation domain.Reservation    `json:"reservation"`
	Status      domain.CalendarStatus `json:"status"`
}

type PaymentService interface {
	// CreatePrepayment opens a pending payment for the reservation's
	// prepay fee and registers a gateway intent for it.
	CreatePrepayment(ctx context.Context, reservationID int32) (*domain.Payment, error)
	ConfirmPrepayment(ctx context.Context, paymentID int32) (*domain.Payment, error)
	// ConfirmFinalSettlement moves pre-paid to paid and issues the receipt.
	ConfirmFinalSettlement(ctx context.Context, paymentID int32) (*domain.Payment, error)
	Refund(ctx context.Context, paymentID int32) (*domain.Payment, error)

	GetPayment(ctx context.Context, id int32) (*domain.Payment, error)
	GetPaymentWithReservation(ctx context.Context, id int32) (*domain.PaymentWithReservation, error)
	GetPendingByReservation(ctx context.Context, reservationID int32) (*domain.Payment, error)
	// ListPendingPayments returns payments still awaiting prepayment
	// confirmation whose reservation starts inside the window.
	ListPendingPayments(ctx context.Context, from, to time.Time) ([]domain.Payment, error)
	GetReceiptForPayment(ctx context.Context, paymentID int32) (*domain.Receipt, error)
}

type ConditionService interface {
	RecordPreCondition(ctx context.Context, c *domain.VehiclePreCondition) error
	// RecordPostCondition prices new damage against the vehicle's latest
	// pre-condition baseline and stores the document with the total.
	RecordPostCondition(ctx context.Context, c *domain.VehiclePostCondition) (utils.DamageDiff, error)
	GetPreCondition(ctx context.Context, vehicleID int32) (*domain.VehiclePreCondition, error)
	GetPostCondition(ctx context.Context, vehicleID int32) (*domain.VehiclePostCondition, error)

	AppendHistory(ctx context.Context, h *domain.VehicleHistory) error
	ListHistory(ctx context.Context, vehicleID int32) ([]domain.VehicleHistory, error)

	RateVehicle(ctx context.Context, r *domain.VehicleRating) error
	ListRatings(ctx context.Context, vehicleID int32) ([]domain.VehicleRating, error)
}

type UserService interface {
	RegisterCustomer(ctx context.Context, email, username, password string, profile *domain.Customer) (*domain.User, error)
	RegisterAgent(ctx context.Context, email, username, password string, profile *domain.Agent) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error) // user, refresh token
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	GetCustomerProfile(ctx context.Context, userID int32) (*domain.Customer, error)
	GetAgentProfile(ctx context.Context, userID int32) (*domain.Agent, error)

	RequestVerificationCode(ctx context.Context, userID int32) error
	VerifyCode(ctx context.Context, userID int32, code string) error
}

type InsuranceService interface {
	AddPolicy(ctx context.Context, p *domain.InsurancePolicy) error
	GetPolicy(ctx context.Context, id int32) (*domain.InsurancePolicy, error)
	FindPolicyByNumber(ctx context.Context, number string) (*domain.InsurancePolicy, error)
	UpdatePolicy(ctx context.Context, p *domain.InsurancePolicy) error
	ListCustomerPolicies(ctx context.Context, customerID int32) ([]domain.InsurancePolicy, error)
	RemovePolicy(ctx context.Context, id int32) error
}

type EmailService interface {
	SendVerificationCode(ctx context.Context, email, username, code string) error
	SendReceipt(ctx context.Context, email string, receipt *domain.Receipt) error
	SendOverdueNotice(ctx context.Context, email string, res domain.Reservation) error
}
