package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, kind, make, model, year, license_plate, fuel_type, is_available, daily_price_cents, prepay_fee_cents, created_at, updated_at`

func scanVehicle(row interface{ Scan(...any) error }, v *domain.Vehicle) error {
	return row.Scan(&v.ID, &v.Kind, &v.Make, &v.Model, &v.Year, &v.LicensePlate, &v.FuelType, &v.IsAvailable, &v.DailyPriceCents, &v.PrepayFeeCents, &v.CreatedAt, &v.UpdatedAt)
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (kind, make, model, year, license_plate, fuel_type, is_available, daily_price_cents, prepay_fee_cents, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, v.Kind, v.Make, v.Model, v.Year, v.LicensePlate, v.FuelType, v.IsAvailable, v.DailyPriceCents, v.PrepayFeeCents, now, now).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := scanVehicle(r.db.QueryRowContext(ctx, query, id), v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET kind=$1, make=$2, model=$3, year=$4, license_plate=$5, fuel_type=$6, is_available=$7, daily_price_cents=$8, prepay_fee_cents=$9, updated_at=$10 WHERE id=$11`
	result, err := r.db.ExecContext(ctx, query, v.Kind, v.Make, v.Model, v.Year, v.LicensePlate, v.FuelType, v.IsAvailable, v.DailyPriceCents, v.PrepayFeeCents, time.Now(), v.ID)
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

// Delete removes the vehicle row; subtype rows and photos go with it via
// ON DELETE CASCADE. Missing ids are a no-op.
func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id`
	return r.queryVehicles(ctx, query)
}

func (r *vehicleRepository) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE is_available = true ORDER BY id`
	return r.queryVehicles(ctx, query)
}

func (r *vehicleRepository) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE fuel_type = $1 ORDER BY id`
	return r.queryVehicles(ctx, query, fuel)
}

func (r *vehicleRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE vehicles SET is_available=$1, updated_at=$2 WHERE id=$3`, available, time.Now(), id)
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

func (r *vehicleRepository) queryVehicles(ctx context.Context, query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := scanVehicle(rows, &v); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) AddPhoto(ctx context.Context, p *domain.Photo) error {
	query := `INSERT INTO vehicle_photos (vehicle_id, url, is_primary) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.VehicleID, p.URL, p.IsPrimary).Scan(&p.ID)
}

func (r *vehicleRepository) ListPhotos(ctx context.Context, vehicleID int32) ([]domain.Photo, error) {
	query := `SELECT id, vehicle_id, url, is_primary FROM vehicle_photos WHERE vehicle_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []domain.Photo
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(&p.ID, &p.VehicleID, &p.URL, &p.IsPrimary); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *vehicleRepository) DeletePhoto(ctx context.Context, photoID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_photos WHERE id = $1`, photoID)
	return err
}
