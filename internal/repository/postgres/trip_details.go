package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type tripDetailsRepository struct {
	db *sql.DB
}

func NewTripDetailsRepository(db *sql.DB) repository.TripDetailsRepository {
	return &tripDetailsRepository{db: db}
}

const tripDetailsColumns = `id, reservation_id, odometer_start, odometer_end, fuel_level_start, fuel_level_end, COALESCE(notes, ''), created_at, updated_at`

func scanTripDetails(row interface{ Scan(...any) error }, td *domain.TripDetails) error {
	return row.Scan(&td.ID, &td.ReservationID, &td.OdometerStart, &td.OdometerEnd, &td.FuelLevelStart, &td.FuelLevelEnd, &td.Notes, &td.CreatedAt, &td.UpdatedAt)
}

func (r *tripDetailsRepository) Create(ctx context.Context, td *domain.TripDetails) error {
	query := `INSERT INTO trip_details (reservation_id, odometer_start, odometer_end, fuel_level_start, fuel_level_end, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, td.ReservationID, td.OdometerStart, td.OdometerEnd, td.FuelLevelStart, td.FuelLevelEnd, td.Notes, now, now).Scan(&td.ID)
}

func (r *tripDetailsRepository) GetByID(ctx context.Context, id int32) (*domain.TripDetails, error) {
	td := &domain.TripDetails{}
	err := scanTripDetails(r.db.QueryRowContext(ctx, `SELECT `+tripDetailsColumns+` FROM trip_details WHERE id = $1`, id), td)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return td, nil
}

func (r *tripDetailsRepository) GetByReservation(ctx context.Context, reservationID int32) (*domain.TripDetails, error) {
	td := &domain.TripDetails{}
	err := scanTripDetails(r.db.QueryRowContext(ctx, `SELECT `+tripDetailsColumns+` FROM trip_details WHERE reservation_id = $1`, reservationID), td)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return td, nil
}

func (r *tripDetailsRepository) Update(ctx context.Context, td *domain.TripDetails) error {
	query := `UPDATE trip_details SET odometer_start=$1, odometer_end=$2, fuel_level_start=$3, fuel_level_end=$4, notes=$5, updated_at=$6 WHERE id=$7`
	result, err := r.db.ExecContext(ctx, query, td.OdometerStart, td.OdometerEnd, td.FuelLevelStart, td.FuelLevelEnd, td.Notes, time.Now(), td.ID)
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

func (r *tripDetailsRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM trip_details WHERE id = $1`, id)
	return err
}
