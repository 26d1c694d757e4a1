package domain

import "time"

// InsurancePolicy belongs to one customer. PolicyNumber is the identity
// key from the insurer and must never be overwritten by an update.
type InsurancePolicy struct {
	ID           int32     `json:"id"`
	CustomerID   int32     `json:"customer_id"`
	PolicyNumber string    `json:"policy_number"`
	Provider     string    `json:"provider"`
	CoverageType string    `json:"coverage_type"`
	PremiumCents int32     `json:"premium_cents"`
	ValidFrom    time.Time `json:"valid_from"`
	ValidUntil   time.Time `json:"valid_until"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
