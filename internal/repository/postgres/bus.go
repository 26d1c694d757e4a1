package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type busRepository struct {
	db *sql.DB
}

func NewBusRepository(db *sql.DB) repository.BusRepository {
	return &busRepository{db: db}
}

const busColumns = `id, vehicle_id, seated_places, standing_places, has_luggage_bay`

const busJoinColumns = `b.id, b.vehicle_id, b.seated_places, b.standing_places, b.has_luggage_bay`

func scanBus(row interface{ Scan(...any) error }, b *domain.Bus) error {
	return row.Scan(&b.ID, &b.VehicleID, &b.SeatedPlaces, &b.StandingPlaces, &b.HasLuggageBay)
}

func (r *busRepository) Create(ctx context.Context, b *domain.Bus) error {
	query := `INSERT INTO buses (vehicle_id, seated_places, standing_places, has_luggage_bay)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.VehicleID, b.SeatedPlaces, b.StandingPlaces, b.HasLuggageBay).Scan(&b.ID)
}

func (r *busRepository) GetByID(ctx context.Context, id int32) (*domain.Bus, error) {
	b := &domain.Bus{}
	err := scanBus(r.db.QueryRowContext(ctx, `SELECT `+busColumns+` FROM buses WHERE id = $1`, id), b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *busRepository) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Bus, error) {
	b := &domain.Bus{}
	err := scanBus(r.db.QueryRowContext(ctx, `SELECT `+busColumns+` FROM buses WHERE vehicle_id = $1`, vehicleID), b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *busRepository) Update(ctx context.Context, b *domain.Bus) error {
	query := `UPDATE buses SET seated_places=$1, standing_places=$2, has_luggage_bay=$3 WHERE id=$4`
	result, err := r.db.ExecContext(ctx, query, b.SeatedPlaces, b.StandingPlaces, b.HasLuggageBay, b.ID)
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

func (r *busRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM buses WHERE id = $1`, id)
	return err
}

func (r *busRepository) List(ctx context.Context) ([]domain.Bus, error) {
	return r.listBuses(ctx, `SELECT `+busColumns+` FROM buses ORDER BY id`)
}

func (r *busRepository) ListAvailable(ctx context.Context) ([]domain.Bus, error) {
	query := `SELECT ` + busJoinColumns + ` FROM buses b JOIN vehicles v ON v.id = b.vehicle_id WHERE v.is_available = true ORDER BY b.id`
	return r.listBuses(ctx, query)
}

func (r *busRepository) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Bus, error) {
	query := `SELECT ` + busJoinColumns + ` FROM buses b JOIN vehicles v ON v.id = b.vehicle_id WHERE v.fuel_type = $1 ORDER BY b.id`
	return r.listBuses(ctx, query, fuel)
}

func (r *busRepository) listBuses(ctx context.Context, query string, args ...any) ([]domain.Bus, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buses []domain.Bus
	for rows.Next() {
		var b domain.Bus
		if err := scanBus(rows, &b); err != nil {
			return nil, err
		}
		buses = append(buses, b)
	}
	return buses, rows.Err()
}
