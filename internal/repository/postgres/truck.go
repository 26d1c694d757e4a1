package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type truckRepository struct {
	db *sql.DB
}

func NewTruckRepository(db *sql.DB) repository.TruckRepository {
	return &truckRepository{db: db}
}

const truckColumns = `id, vehicle_id, payload_kg, axle_count, has_trailer_hitch`

const truckJoinColumns = `t.id, t.vehicle_id, t.payload_kg, t.axle_count, t.has_trailer_hitch`

func scanTruck(row interface{ Scan(...any) error }, t *domain.Truck) error {
	return row.Scan(&t.ID, &t.VehicleID, &t.PayloadKg, &t.AxleCount, &t.HasTrailerHitch)
}

func (r *truckRepository) Create(ctx context.Context, t *domain.Truck) error {
	query := `INSERT INTO trucks (vehicle_id, payload_kg, axle_count, has_trailer_hitch)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.VehicleID, t.PayloadKg, t.AxleCount, t.HasTrailerHitch).Scan(&t.ID)
}

func (r *truckRepository) GetByID(ctx context.Context, id int32) (*domain.Truck, error) {
	t := &domain.Truck{}
	err := scanTruck(r.db.QueryRowContext(ctx, `SELECT `+truckColumns+` FROM trucks WHERE id = $1`, id), t)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *truckRepository) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Truck, error) {
	t := &domain.Truck{}
	err := scanTruck(r.db.QueryRowContext(ctx, `SELECT `+truckColumns+` FROM trucks WHERE vehicle_id = $1`, vehicleID), t)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *truckRepository) Update(ctx context.Context, t *domain.Truck) error {
	query := `UPDATE trucks SET payload_kg=$1, axle_count=$2, has_trailer_hitch=$3 WHERE id=$4`
	result, err := r.db.ExecContext(ctx, query, t.PayloadKg, t.AxleCount, t.HasTrailerHitch, t.ID)
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

func (r *truckRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM trucks WHERE id = $1`, id)
	return err
}

func (r *truckRepository) List(ctx context.Context) ([]domain.Truck, error) {
	return r.listTrucks(ctx, `SELECT `+truckColumns+` FROM trucks ORDER BY id`)
}

func (r *truckRepository) ListAvailable(ctx context.Context) ([]domain.Truck, error) {
	query := `SELECT ` + truckJoinColumns + ` FROM trucks t JOIN vehicles v ON v.id = t.vehicle_id WHERE v.is_available = true ORDER BY t.id`
	return r.listTrucks(ctx, query)
}

func (r *truckRepository) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Truck, error) {
	query := `SELECT ` + truckJoinColumns + ` FROM trucks t JOIN vehicles v ON v.id = t.vehicle_id WHERE v.fuel_type = $1 ORDER BY t.id`
	return r.listTrucks(ctx, query, fuel)
}

func (r *truckRepository) listTrucks(ctx context.Context, query string, args ...any) ([]domain.Truck, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trucks []domain.Truck
	for rows.Next() {
		var t domain.Truck
		if err := scanTruck(rows, &t); err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}
	return trucks, rows.Err()
}
