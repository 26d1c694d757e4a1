package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type receiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(db *sql.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

const receiptColumns = `id, payment_id, number, amount_cents, issued_at, created_at, updated_at`

func scanReceipt(row interface{ Scan(...any) error }, rc *domain.Receipt) error {
	return row.Scan(&rc.ID, &rc.PaymentID, &rc.Number, &rc.AmountCents, &rc.IssuedAt, &rc.CreatedAt, &rc.UpdatedAt)
}

func (r *receiptRepository) Create(ctx context.Context, rc *domain.Receipt) error {
	query := `INSERT INTO receipts (payment_id, number, amount_cents, issued_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, rc.PaymentID, rc.Number, rc.AmountCents, rc.IssuedAt, now, now).Scan(&rc.ID)
}

func (r *receiptRepository) GetByID(ctx context.Context, id int32) (*domain.Receipt, error) {
	rc := &domain.Receipt{}
	err := scanReceipt(r.db.QueryRowContext(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1`, id), rc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (r *receiptRepository) GetByPayment(ctx context.Context, paymentID int32) (*domain.Receipt, error) {
	rc := &domain.Receipt{}
	err := scanReceipt(r.db.QueryRowContext(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE payment_id = $1`, paymentID), rc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// Update exists for corrective changes only; receipts are otherwise
// immutable business records.
func (r *receiptRepository) Update(ctx context.Context, rc *domain.Receipt) error {
	query := `UPDATE receipts SET number=$1, amount_cents=$2, issued_at=$3, updated_at=$4 WHERE id=$5`
	result, err := r.db.ExecContext(ctx, query, rc.Number, rc.AmountCents, rc.IssuedAt, time.Now(), rc.ID)
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

func (r *receiptRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = $1`, id)
	return err
}

func (r *receiptRepository) List(ctx context.Context) ([]domain.Receipt, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+receiptColumns+` FROM receipts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		var rc domain.Receipt
		if err := scanReceipt(rows, &rc); err != nil {
			return nil, err
		}
		receipts = append(receipts, rc)
	}
	return receipts, rows.Err()
}
