package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

const carColumns = `id, vehicle_id, seats, doors, transmission, trunk_liters, has_air_condition`

// carJoinColumns qualifies each column for queries that join vehicles.
const carJoinColumns = `c.id, c.vehicle_id, c.seats, c.doors, c.transmission, c.trunk_liters, c.has_air_condition`

func scanCar(row interface{ Scan(...any) error }, c *domain.Car) error {
	return row.Scan(&c.ID, &c.VehicleID, &c.Seats, &c.Doors, &c.Transmission, &c.TrunkLiters, &c.HasAirCondition)
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (vehicle_id, seats, doors, transmission, trunk_liters, has_air_condition)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.VehicleID, c.Seats, c.Doors, c.Transmission, c.TrunkLiters, c.HasAirCondition).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	err := scanCar(r.db.QueryRowContext(ctx, `SELECT `+carColumns+` FROM cars WHERE id = $1`, id), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Car, error) {
	c := &domain.Car{}
	err := scanCar(r.db.QueryRowContext(ctx, `SELECT `+carColumns+` FROM cars WHERE vehicle_id = $1`, vehicleID), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET seats=$1, doors=$2, transmission=$3, trunk_liters=$4, has_air_condition=$5 WHERE id=$6`
	result, err := r.db.ExecContext(ctx, query, c.Seats, c.Doors, c.Transmission, c.TrunkLiters, c.HasAirCondition, c.ID)
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

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	return err
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	return r.listCars(ctx, `SELECT `+carColumns+` FROM cars ORDER BY id`)
}

func (r *carRepository) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT ` + carJoinColumns + ` FROM cars c JOIN vehicles v ON v.id = c.vehicle_id WHERE v.is_available = true ORDER BY c.id`
	return r.listCars(ctx, query)
}

func (r *carRepository) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Car, error) {
	query := `SELECT ` + carJoinColumns + ` FROM cars c JOIN vehicles v ON v.id = c.vehicle_id WHERE v.fuel_type = $1 ORDER BY c.id`
	return r.listCars(ctx, query, fuel)
}

func (r *carRepository) listCars(ctx context.Context, query string, args ...any) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}
