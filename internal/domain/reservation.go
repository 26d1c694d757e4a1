package domain

import "time"

// CalendarStatus is the numeric status the booking calendar consumes.
type CalendarStatus int32

const (
	CalendarStatusBooked   CalendarStatus = 0
	CalendarStatusPickedUp CalendarStatus = 1
	CalendarStatusReturned CalendarStatus = 2
)

// Reservation links a customer to a vehicle for a date range. PickedUp and
// BroughtBack are independent one-way toggles within a rental cycle; a
// vehicle has at most one reservation that is not yet brought back at a
// time, enforced by callers rather than by a store constraint.
type Reservation struct {
	ID          int32     `json:"id"`
	CustomerID  int32     `json:"customer_id"`
	VehicleID   int32     `json:"vehicle_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PickedUp    bool      `json:"picked_up"`
	BroughtBack bool      `json:"brought_back"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Status derives the calendar enum from the boolean pair.
func (r *Reservation) Status() CalendarStatus {
	switch {
	case r.BroughtBack:
		return CalendarStatusReturned
	case r.PickedUp:
		return CalendarStatusPickedUp
	default:
		return CalendarStatusBooked
	}
}

// Active reports whether the reservation still holds the vehicle.
func (r *Reservation) Active() bool {
	return !r.BroughtBack
}

// Overdue reports whether the scheduled end has passed without a return.
func (r *Reservation) Overdue(now time.Time) bool {
	return r.Active() && now.After(r.EndDate)
}

// ReservationWithCustomer is the denormalized read joining
// Reservation -> Customer -> User, used to avoid N+1 round trips.
type ReservationWithCustomer struct {
	Reservation Reservation `json:"reservation"`
	Customer    Customer    `json:"customer"`
	Email       string      `json:"email"`
}

// ReservationWithVehicle joins Reservation -> Vehicle.
type ReservationWithVehicle struct {
	Reservation Reservation `json:"reservation"`
	Vehicle     Vehicle     `json:"vehicle"`
}

// TripDetails records mileage and fuel readings for a completed rental.
type TripDetails struct {
	ID             int32     `json:"id"`
	ReservationID  int32     `json:"reservation_id"`
	OdometerStart  int32     `json:"odometer_start"`
	OdometerEnd    int32     `json:"odometer_end"`
	FuelLevelStart int32     `json:"fuel_level_start"` // percent
	FuelLevelEnd   int32     `json:"fuel_level_end"`   // percent
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
