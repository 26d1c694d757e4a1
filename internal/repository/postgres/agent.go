package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type agentRepository struct {
	db *sql.DB
}

func NewAgentRepository(db *sql.DB) repository.AgentRepository {
	return &agentRepository{db: db}
}

const agentColumns = `id, user_id, first_name, last_name, phone_number, branch_name, created_at, updated_at`

func scanAgent(row interface{ Scan(...any) error }, a *domain.Agent) error {
	return row.Scan(&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.PhoneNumber, &a.BranchName, &a.CreatedAt, &a.UpdatedAt)
}

func (r *agentRepository) Create(ctx context.Context, a *domain.Agent) error {
	query := `INSERT INTO agents (user_id, first_name, last_name, phone_number, branch_name, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, a.UserID, a.FirstName, a.LastName, a.PhoneNumber, a.BranchName, now, now).Scan(&a.ID)
}

func (r *agentRepository) GetByID(ctx context.Context, id int32) (*domain.Agent, error) {
	a := &domain.Agent{}
	err := scanAgent(r.db.QueryRowContext(ctx, `SELECT `+agentColumns+` FROM agents WHERE id = $1`, id), a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *agentRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Agent, error) {
	a := &domain.Agent{}
	err := scanAgent(r.db.QueryRowContext(ctx, `SELECT `+agentColumns+` FROM agents WHERE user_id = $1`, userID), a)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *agentRepository) Update(ctx context.Context, a *domain.Agent) error {
	query := `UPDATE agents SET first_name=$1, last_name=$2, phone_number=$3, branch_name=$4, updated_at=$5 WHERE id=$6`
	result, err := r.db.ExecContext(ctx, query, a.FirstName, a.LastName, a.PhoneNumber, a.BranchName, time.Now(), a.ID)
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

func (r *agentRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM agents WHERE id = $1`, id)
	return err
}

func (r *agentRepository) List(ctx context.Context) ([]domain.Agent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+agentColumns+` FROM agents ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []domain.Agent
	for rows.Next() {
		var a domain.Agent
		if err := scanAgent(rows, &a); err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}
