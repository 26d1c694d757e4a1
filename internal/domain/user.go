package domain

import "time"

// User is the identity root. Customer and Agent are role profiles that
// reference it by UserID; there is no inheritance at the storage level.
type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VerificationCode is a short-lived child of User, created on demand and
// deleted after use or expiry.
type VerificationCode struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *VerificationCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

type Customer struct {
	ID            int32     `json:"id"`
	UserID        int32     `json:"user_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	PhoneNumber   string    `json:"phone_number"`
	LicenseNumber string    `json:"license_number"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Agent struct {
	ID          int32     `json:"id"`
	UserID      int32     `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	BranchName  string    `json:"branch_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
