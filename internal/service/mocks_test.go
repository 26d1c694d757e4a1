package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/gateway"
	"vrms-backend/internal/security"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Vehicle, error) {
	args := m.Called(ctx, fuel)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) SetAvailability(ctx context.Context, id int32, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockVehicleRepo) AddPhoto(ctx context.Context, p *domain.Photo) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockVehicleRepo) ListPhotos(ctx context.Context, vehicleID int32) ([]domain.Photo, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Photo), args.Error(1)
}
func (m *MockVehicleRepo) DeletePhoto(ctx context.Context, photoID int32) error {
	args := m.Called(ctx, photoID)
	return args.Error(0)
}

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, c *domain.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Car, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, c *domain.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Car, error) {
	args := m.Called(ctx, fuel)
	return args.Get(0).([]domain.Car), args.Error(1)
}

// MockBusRepo
type MockBusRepo struct {
	mock.Mock
}

func (m *MockBusRepo) Create(ctx context.Context, b *domain.Bus) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBusRepo) GetByID(ctx context.Context, id int32) (*domain.Bus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bus), args.Error(1)
}
func (m *MockBusRepo) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Bus, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bus), args.Error(1)
}
func (m *MockBusRepo) Update(ctx context.Context, b *domain.Bus) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBusRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBusRepo) List(ctx context.Context) ([]domain.Bus, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Bus), args.Error(1)
}
func (m *MockBusRepo) ListAvailable(ctx context.Context) ([]domain.Bus, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Bus), args.Error(1)
}
func (m *MockBusRepo) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Bus, error) {
	args := m.Called(ctx, fuel)
	return args.Get(0).([]domain.Bus), args.Error(1)
}

// MockTruckRepo
type MockTruckRepo struct {
	mock.Mock
}

func (m *MockTruckRepo) Create(ctx context.Context, t *domain.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTruckRepo) GetByID(ctx context.Context, id int32) (*domain.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}
func (m *MockTruckRepo) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Truck, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}
func (m *MockTruckRepo) Update(ctx context.Context, t *domain.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTruckRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTruckRepo) List(ctx context.Context) ([]domain.Truck, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Truck), args.Error(1)
}
func (m *MockTruckRepo) ListAvailable(ctx context.Context) ([]domain.Truck, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Truck), args.Error(1)
}
func (m *MockTruckRepo) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Truck, error) {
	args := m.Called(ctx, fuel)
	return args.Get(0).([]domain.Truck), args.Error(1)
}

// MockMotorcycleRepo
type MockMotorcycleRepo struct {
	mock.Mock
}

func (m *MockMotorcycleRepo) Create(ctx context.Context, mc *domain.Motorcycle) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) GetByID(ctx context.Context, id int32) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Motorcycle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) Update(ctx context.Context, mc *domain.Motorcycle) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) List(ctx context.Context) ([]domain.Motorcycle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) ListAvailable(ctx context.Context) ([]domain.Motorcycle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Motorcycle, error) {
	args := m.Called(ctx, fuel)
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListActiveByVehicle(ctx context.Context, vehicleID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListInWindow(ctx context.Context, from, to time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) GetWithCustomer(ctx context.Context, id int32) (*domain.ReservationWithCustomer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationWithCustomer), args.Error(1)
}
func (m *MockReservationRepo) GetWithVehicle(ctx context.Context, id int32) (*domain.ReservationWithVehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationWithVehicle), args.Error(1)
}
func (m *MockReservationRepo) MarkPickedUp(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationRepo) MarkBroughtBack(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTripDetailsRepo
type MockTripDetailsRepo struct {
	mock.Mock
}

func (m *MockTripDetailsRepo) Create(ctx context.Context, td *domain.TripDetails) error {
	args := m.Called(ctx, td)
	return args.Error(0)
}
func (m *MockTripDetailsRepo) GetByID(ctx context.Context, id int32) (*domain.TripDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripDetails), args.Error(1)
}
func (m *MockTripDetailsRepo) GetByReservation(ctx context.Context, reservationID int32) (*domain.TripDetails, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripDetails), args.Error(1)
}
func (m *MockTripDetailsRepo) Update(ctx context.Context, td *domain.TripDetails) error {
	args := m.Called(ctx, td)
	return args.Error(0)
}
func (m *MockTripDetailsRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetPendingByReservation(ctx context.Context, reservationID int32) (*domain.Payment, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListPendingInWindow(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListConfirmedPendingCleanup(ctx context.Context, limit int32) ([]domain.Payment, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetWithReservation(ctx context.Context, id int32) (*domain.PaymentWithReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentWithReservation), args.Error(1)
}
func (m *MockPaymentRepo) MarkRefunded(ctx context.Context, id int32, refundID string, at time.Time) error {
	args := m.Called(ctx, id, refundID, at)
	return args.Error(0)
}

// MockReceiptRepo
type MockReceiptRepo struct {
	mock.Mock
}

func (m *MockReceiptRepo) Create(ctx context.Context, r *domain.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReceiptRepo) GetByID(ctx context.Context, id int32) (*domain.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}
func (m *MockReceiptRepo) GetByPayment(ctx context.Context, paymentID int32) (*domain.Receipt, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}
func (m *MockReceiptRepo) Update(ctx context.Context, r *domain.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReceiptRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReceiptRepo) List(ctx context.Context) ([]domain.Receipt, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

// MockHistoryRepo
type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) Insert(ctx context.Context, h *domain.VehicleHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
func (m *MockHistoryRepo) GetByID(ctx context.Context, id string) (*domain.VehicleHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleHistory), args.Error(1)
}
func (m *MockHistoryRepo) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehicleHistory, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleHistory), args.Error(1)
}
func (m *MockHistoryRepo) ListByVehicleID(ctx context.Context, vehicleID int32) ([]domain.VehicleHistory, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.VehicleHistory), args.Error(1)
}
func (m *MockHistoryRepo) Update(ctx context.Context, h *domain.VehicleHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
func (m *MockHistoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockHistoryRepo) DeleteByVehicleID(ctx context.Context, vehicleID int32) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}
func (m *MockHistoryRepo) List(ctx context.Context) ([]domain.VehicleHistory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleHistory), args.Error(1)
}

// MockPreConditionRepo
type MockPreConditionRepo struct {
	mock.Mock
}

func (m *MockPreConditionRepo) Insert(ctx context.Context, c *domain.VehiclePreCondition) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockPreConditionRepo) GetByID(ctx context.Context, id string) (*domain.VehiclePreCondition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehiclePreCondition), args.Error(1)
}
func (m *MockPreConditionRepo) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehiclePreCondition, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehiclePreCondition), args.Error(1)
}
func (m *MockPreConditionRepo) Update(ctx context.Context, c *domain.VehiclePreCondition) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockPreConditionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPreConditionRepo) DeleteByVehicleID(ctx context.Context, vehicleID int32) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}
func (m *MockPreConditionRepo) List(ctx context.Context) ([]domain.VehiclePreCondition, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehiclePreCondition), args.Error(1)
}

// MockPostConditionRepo
type MockPostConditionRepo struct {
	mock.Mock
}

func (m *MockPostConditionRepo) Insert(ctx context.Context, c *domain.VehiclePostCondition) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockPostConditionRepo) GetByID(ctx context.Context, id string) (*domain.VehiclePostCondition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehiclePostCondition), args.Error(1)
}
func (m *MockPostConditionRepo) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehiclePostCondition, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehiclePostCondition), args.Error(1)
}
func (m *MockPostConditionRepo) Update(ctx context.Context, c *domain.VehiclePostCondition) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockPostConditionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPostConditionRepo) DeleteByVehicleID(ctx context.Context, vehicleID int32) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}
func (m *MockPostConditionRepo) List(ctx context.Context) ([]domain.VehiclePostCondition, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehiclePostCondition), args.Error(1)
}

// MockRatingRepo
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Insert(ctx context.Context, r *domain.VehicleRating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRatingRepo) GetByID(ctx context.Context, id string) (*domain.VehicleRating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleRating), args.Error(1)
}
func (m *MockRatingRepo) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehicleRating, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleRating), args.Error(1)
}
func (m *MockRatingRepo) ListByVehicleID(ctx context.Context, vehicleID int32) ([]domain.VehicleRating, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.VehicleRating), args.Error(1)
}
func (m *MockRatingRepo) Update(ctx context.Context, r *domain.VehicleRating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRatingRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRatingRepo) DeleteByVehicleID(ctx context.Context, vehicleID int32) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}
func (m *MockRatingRepo) List(ctx context.Context) ([]domain.VehicleRating, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleRating), args.Error(1)
}

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, amountCents int32, currency string, idempotencyKey string) (*gateway.Intent, error) {
	args := m.Called(ctx, amountCents, currency, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Intent), args.Error(1)
}
func (m *MockGateway) Refund(ctx context.Context, paymentIntentID string, idempotencyKey string) (string, error) {
	args := m.Called(ctx, paymentIntentID, idempotencyKey)
	return args.String(0), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) CreateVerificationCode(ctx context.Context, code *domain.VerificationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
func (m *MockUserRepo) GetVerificationCode(ctx context.Context, userID int32, code string) (*domain.VerificationCode, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationCode), args.Error(1)
}
func (m *MockUserRepo) DeleteVerificationCode(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) DeleteExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

type MockAgentRepo struct {
	mock.Mock
}

func (m *MockAgentRepo) Create(ctx context.Context, a *domain.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAgentRepo) GetByID(ctx context.Context, id int32) (*domain.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agent), args.Error(1)
}
func (m *MockAgentRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Agent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agent), args.Error(1)
}
func (m *MockAgentRepo) Update(ctx context.Context, a *domain.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAgentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAgentRepo) List(ctx context.Context) ([]domain.Agent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Agent), args.Error(1)
}

type MockInsurancePolicyRepo struct {
	mock.Mock
}

func (m *MockInsurancePolicyRepo) Create(ctx context.Context, p *domain.InsurancePolicy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockInsurancePolicyRepo) GetByID(ctx context.Context, id int32) (*domain.InsurancePolicy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsurancePolicy), args.Error(1)
}
func (m *MockInsurancePolicyRepo) GetByPolicyNumber(ctx context.Context, number string) (*domain.InsurancePolicy, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsurancePolicy), args.Error(1)
}
func (m *MockInsurancePolicyRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.InsurancePolicy, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InsurancePolicy), args.Error(1)
}
func (m *MockInsurancePolicyRepo) Update(ctx context.Context, p *domain.InsurancePolicy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockInsurancePolicyRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendVerificationCode(ctx context.Context, email, username, code string) error {
	args := m.Called(ctx, email, username, code)
	return args.Error(0)
}
func (m *MockEmailService) SendReceipt(ctx context.Context, email string, receipt *domain.Receipt) error {
	args := m.Called(ctx, email, receipt)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, email string, res domain.Reservation) error {
	args := m.Called(ctx, email, res)
	return args.Error(0)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
