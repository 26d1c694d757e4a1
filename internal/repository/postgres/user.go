package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, username, password_hash, COALESCE(refresh_token, ''), created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }, u *domain.User) error {
	return row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt)
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, username, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, u.Email, u.Username, u.PasswordHash, now, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id), u)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email), u)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, username=$2, password_hash=$3, refresh_token=$4, updated_at=$5 WHERE id=$6`
	result, err := r.db.ExecContext(ctx, query, u.Email, u.Username, u.PasswordHash, u.RefreshToken, time.Now(), u.ID)
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

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *userRepository) CreateVerificationCode(ctx context.Context, code *domain.VerificationCode) error {
	query := `INSERT INTO verification_codes (user_id, code, expires_at, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, code.UserID, code.Code, code.ExpiresAt, time.Now()).Scan(&code.ID)
}

func (r *userRepository) GetVerificationCode(ctx context.Context, userID int32, code string) (*domain.VerificationCode, error) {
	vc := &domain.VerificationCode{}
	query := `SELECT id, user_id, code, expires_at, created_at FROM verification_codes WHERE user_id = $1 AND code = $2`
	err := r.db.QueryRowContext(ctx, query, userID, code).Scan(&vc.ID, &vc.UserID, &vc.Code, &vc.ExpiresAt, &vc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return vc, nil
}

func (r *userRepository) DeleteVerificationCode(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM verification_codes WHERE id = $1`, id)
	return err
}

func (r *userRepository) DeleteExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM verification_codes WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
