package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, customer_id, vehicle_id, start_date, end_date, picked_up, brought_back, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }, res *domain.Reservation) error {
	return row.Scan(&res.ID, &res.CustomerID, &res.VehicleID, &res.StartDate, &res.EndDate, &res.PickedUp, &res.BroughtBack, &res.CreatedAt, &res.UpdatedAt)
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (customer_id, vehicle_id, start_date, end_date, picked_up, brought_back, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, res.CustomerID, res.VehicleID, res.StartDate, res.EndDate, res.PickedUp, res.BroughtBack, now, now).Scan(&res.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	err := scanReservation(r.db.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id), res)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations SET customer_id=$1, vehicle_id=$2, start_date=$3, end_date=$4, picked_up=$5, brought_back=$6, updated_at=$7 WHERE id=$8`
	result, err := r.db.ExecContext(ctx, query, res.CustomerID, res.VehicleID, res.StartDate, res.EndDate, res.PickedUp, res.BroughtBack, time.Now(), res.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	return err
}

func (r *reservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.queryReservations(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY start_date`)
}

func (r *reservationRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Reservation, error) {
	return r.queryReservations(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE customer_id = $1 ORDER BY start_date DESC`, customerID)
}

func (r *reservationRepository) ListActiveByVehicle(ctx context.Context, vehicleID int32) ([]domain.Reservation, error) {
	return r.queryReservations(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE vehicle_id = $1 AND brought_back = false ORDER BY start_date`, vehicleID)
}

func (r *reservationRepository) ListInWindow(ctx context.Context, from, to time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE start_date < $2 AND end_date > $1 ORDER BY start_date`
	return r.queryReservations(ctx, query, from, to)
}

func (r *reservationRepository) ListOverdue(ctx context.Context, now time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE brought_back = false AND end_date < $1 ORDER BY end_date`
	return r.queryReservations(ctx, query, now)
}

// GetWithCustomer joins reservation -> customer -> user in one round trip.
func (r *reservationRepository) GetWithCustomer(ctx context.Context, id int32) (*domain.ReservationWithCustomer, error) {
	out := &domain.ReservationWithCustomer{}
	query := `SELECT r.id, r.customer_id, r.vehicle_id, r.start_date, r.end_date, r.picked_up, r.brought_back, r.created_at, r.updated_at,
	                 c.id, c.user_id, c.first_name, c.last_name, c.phone_number, c.license_number, COALESCE(c.address, ''), c.created_at, c.updated_at,
	                 u.email
	          FROM reservations r
	          JOIN customers c ON c.id = r.customer_id
	          JOIN users u ON u.id = c.user_id
	          WHERE r.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&out.Reservation.ID, &out.Reservation.CustomerID, &out.Reservation.VehicleID, &out.Reservation.StartDate, &out.Reservation.EndDate, &out.Reservation.PickedUp, &out.Reservation.BroughtBack, &out.Reservation.CreatedAt, &out.Reservation.UpdatedAt,
		&out.Customer.ID, &out.Customer.UserID, &out.Customer.FirstName, &out.Customer.LastName, &out.Customer.PhoneNumber, &out.Customer.LicenseNumber, &out.Customer.Address, &out.Customer.CreatedAt, &out.Customer.UpdatedAt,
		&out.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetWithVehicle joins reservation -> vehicle in one round trip.
func (r *reservationRepository) GetWithVehicle(ctx context.Context, id int32) (*domain.ReservationWithVehicle, error) {
	out := &domain.ReservationWithVehicle{}
	query := `SELECT r.id, r.customer_id, r.vehicle_id, r.start_date, r.end_date, r.picked_up, r.brought_back, r.created_at, r.updated_at,
	                 v.id, v.kind, v.make, v.model, v.year, v.license_plate, v.fuel_type, v.is_available, v.daily_price_cents, v.prepay_fee_cents, v.created_at, v.updated_at
	          FROM reservations r
	          JOIN vehicles v ON v.id = r.vehicle_id
	          WHERE r.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&out.Reservation.ID, &out.Reservation.CustomerID, &out.Reservation.VehicleID, &out.Reservation.StartDate, &out.Reservation.EndDate, &out.Reservation.PickedUp, &out.Reservation.BroughtBack, &out.Reservation.CreatedAt, &out.Reservation.UpdatedAt,
		&out.Vehicle.ID, &out.Vehicle.Kind, &out.Vehicle.Make, &out.Vehicle.Model, &out.Vehicle.Year, &out.Vehicle.LicensePlate, &out.Vehicle.FuelType, &out.Vehicle.IsAvailable, &out.Vehicle.DailyPriceCents, &out.Vehicle.PrepayFeeCents, &out.Vehicle.CreatedAt, &out.Vehicle.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkPickedUp sets the one-way pickup toggle. Idempotent: re-marking an
// already picked-up reservation matches the row and succeeds.
func (r *reservationRepository) MarkPickedUp(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `UPDATE reservations SET picked_up = true, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrConflict
	}
	return nil
}

// MarkBroughtBack sets the one-way return toggle. This layer does not
// require a prior pickup.
func (r *reservationRepository) MarkBroughtBack(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `UPDATE reservations SET brought_back = true, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *reservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
