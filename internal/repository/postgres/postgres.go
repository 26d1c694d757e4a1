package postgres

import (
	"database/sql"

	"vrms-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles every relational repository behind one handle. Each
// repository owns the shared *sql.DB and nothing else; entities cross
// repository boundaries only by foreign-key value.
type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.CarRepository
	repository.BusRepository
	repository.TruckRepository
	repository.MotorcycleRepository
	repository.UserRepository
	repository.CustomerRepository
	repository.AgentRepository
	repository.ReservationRepository
	repository.TripDetailsRepository
	repository.PaymentRepository
	repository.ReceiptRepository
	repository.InsurancePolicyRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		VehicleRepository:         NewVehicleRepository(db),
		CarRepository:             NewCarRepository(db),
		BusRepository:             NewBusRepository(db),
		TruckRepository:           NewTruckRepository(db),
		MotorcycleRepository:      NewMotorcycleRepository(db),
		UserRepository:            NewUserRepository(db),
		CustomerRepository:        NewCustomerRepository(db),
		AgentRepository:           NewAgentRepository(db),
		ReservationRepository:     NewReservationRepository(db),
		TripDetailsRepository:     NewTripDetailsRepository(db),
		PaymentRepository:         NewPaymentRepository(db),
		ReceiptRepository:         NewReceiptRepository(db),
		InsurancePolicyRepository: NewInsurancePolicyRepository(db),
	}
}
