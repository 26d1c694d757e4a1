package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type motorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) repository.MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

const motorcycleColumns = `id, vehicle_id, engine_cc, has_sidecar`

const motorcycleJoinColumns = `m.id, m.vehicle_id, m.engine_cc, m.has_sidecar`

func scanMotorcycle(row interface{ Scan(...any) error }, m *domain.Motorcycle) error {
	return row.Scan(&m.ID, &m.VehicleID, &m.EngineCC, &m.HasSidecar)
}

func (r *motorcycleRepository) Create(ctx context.Context, m *domain.Motorcycle) error {
	query := `INSERT INTO motorcycles (vehicle_id, engine_cc, has_sidecar) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.VehicleID, m.EngineCC, m.HasSidecar).Scan(&m.ID)
}

func (r *motorcycleRepository) GetByID(ctx context.Context, id int32) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	err := scanMotorcycle(r.db.QueryRowContext(ctx, `SELECT `+motorcycleColumns+` FROM motorcycles WHERE id = $1`, id), m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motorcycleRepository) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	err := scanMotorcycle(r.db.QueryRowContext(ctx, `SELECT `+motorcycleColumns+` FROM motorcycles WHERE vehicle_id = $1`, vehicleID), m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motorcycleRepository) Update(ctx context.Context, m *domain.Motorcycle) error {
	query := `UPDATE motorcycles SET engine_cc=$1, has_sidecar=$2 WHERE id=$3`
	result, err := r.db.ExecContext(ctx, query, m.EngineCC, m.HasSidecar, m.ID)
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

func (r *motorcycleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM motorcycles WHERE id = $1`, id)
	return err
}

func (r *motorcycleRepository) List(ctx context.Context) ([]domain.Motorcycle, error) {
	return r.listMotorcycles(ctx, `SELECT `+motorcycleColumns+` FROM motorcycles ORDER BY id`)
}

func (r *motorcycleRepository) ListAvailable(ctx context.Context) ([]domain.Motorcycle, error) {
	query := `SELECT ` + motorcycleJoinColumns + ` FROM motorcycles m JOIN vehicles v ON v.id = m.vehicle_id WHERE v.is_available = true ORDER BY m.id`
	return r.listMotorcycles(ctx, query)
}

func (r *motorcycleRepository) ListByFuelType(ctx context.Context, fuel domain.FuelType) ([]domain.Motorcycle, error) {
	query := `SELECT ` + motorcycleJoinColumns + ` FROM motorcycles m JOIN vehicles v ON v.id = m.vehicle_id WHERE v.fuel_type = $1 ORDER BY m.id`
	return r.listMotorcycles(ctx, query, fuel)
}

func (r *motorcycleRepository) listMotorcycles(ctx context.Context, query string, args ...any) ([]domain.Motorcycle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var motorcycles []domain.Motorcycle
	for rows.Next() {
		var m domain.Motorcycle
		if err := scanMotorcycle(rows, &m); err != nil {
			return nil, err
		}
		motorcycles = append(motorcycles, m)
	}
	return motorcycles, rows.Err()
}
