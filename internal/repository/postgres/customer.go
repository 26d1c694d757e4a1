package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, user_id, first_name, last_name, phone_number, license_number, COALESCE(address, ''), created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }, c *domain.Customer) error {
	return row.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.LicenseNumber, &c.Address, &c.CreatedAt, &c.UpdatedAt)
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (user_id, first_name, last_name, phone_number, license_number, address, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, c.UserID, c.FirstName, c.LastName, c.PhoneNumber, c.LicenseNumber, c.Address, now, now).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := scanCustomer(r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := scanCustomer(r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE user_id = $1`, userID), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, phone_number=$3, license_number=$4, address=$5, updated_at=$6 WHERE id=$7`
	result, err := r.db.ExecContext(ctx, query, c.FirstName, c.LastName, c.PhoneNumber, c.LicenseNumber, c.Address, time.Now(), c.ID)
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

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
