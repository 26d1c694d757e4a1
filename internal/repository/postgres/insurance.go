package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type insurancePolicyRepository struct {
	db *sql.DB
}

func NewInsurancePolicyRepository(db *sql.DB) repository.InsurancePolicyRepository {
	return &insurancePolicyRepository{db: db}
}

const insuranceColumns = `id, customer_id, policy_number, provider, coverage_type, premium_cents, valid_from, valid_until, created_at, updated_at`

func scanInsurancePolicy(row interface{ Scan(...any) error }, p *domain.InsurancePolicy) error {
	return row.Scan(&p.ID, &p.CustomerID, &p.PolicyNumber, &p.Provider, &p.CoverageType, &p.PremiumCents, &p.ValidFrom, &p.ValidUntil, &p.CreatedAt, &p.UpdatedAt)
}

func (r *insurancePolicyRepository) Create(ctx context.Context, p *domain.InsurancePolicy) error {
	query := `INSERT INTO insurance_policies (customer_id, policy_number, provider, coverage_type, premium_cents, valid_from, valid_until, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, p.CustomerID, p.PolicyNumber, p.Provider, p.CoverageType, p.PremiumCents, p.ValidFrom, p.ValidUntil, now, now).Scan(&p.ID)
}

func (r *insurancePolicyRepository) GetByID(ctx context.Context, id int32) (*domain.InsurancePolicy, error) {
	p := &domain.InsurancePolicy{}
	err := scanInsurancePolicy(r.db.QueryRowContext(ctx, `SELECT `+insuranceColumns+` FROM insurance_policies WHERE id = $1`, id), p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *insurancePolicyRepository) GetByPolicyNumber(ctx context.Context, number string) (*domain.InsurancePolicy, error) {
	p := &domain.InsurancePolicy{}
	err := scanInsurancePolicy(r.db.QueryRowContext(ctx, `SELECT `+insuranceColumns+` FROM insurance_policies WHERE policy_number = $1`, number), p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *insurancePolicyRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.InsurancePolicy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+insuranceColumns+` FROM insurance_policies WHERE customer_id = $1 ORDER BY valid_from DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []domain.InsurancePolicy
	for rows.Next() {
		var p domain.InsurancePolicy
		if err := scanInsurancePolicy(rows, &p); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// Update writes every mutable field but deliberately leaves policy_number
// untouched; it is the insurer's identity key. A vanished row is a
// conflict, not a no-op.
func (r *insurancePolicyRepository) Update(ctx context.Context, p *domain.InsurancePolicy) error {
	query := `UPDATE insurance_policies SET customer_id=$1, provider=$2, coverage_type=$3, premium_cents=$4, valid_from=$5, valid_until=$6, updated_at=$7 WHERE id=$8`
	result, err := r.db.ExecContext(ctx, query, p.CustomerID, p.Provider, p.CoverageType, p.PremiumCents, p.ValidFrom, p.ValidUntil, time.Now(), p.ID)
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

func (r *insurancePolicyRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM insurance_policies WHERE id = $1`, id)
	return err
}
