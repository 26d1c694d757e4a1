package service

import (
	"context"
	"fmt"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type insuranceService struct {
	policyRepo   repository.InsurancePolicyRepository
	customerRepo repository.CustomerRepository
}

func NewInsuranceService(policyRepo repository.InsurancePolicyRepository, customerRepo repository.CustomerRepository) InsuranceService {
	return &insuranceService{policyRepo: policyRepo, customerRepo: customerRepo}
}

func (s *insuranceService) AddPolicy(ctx context.Context, p *domain.InsurancePolicy) error {
	if _, err := s.customerRepo.GetByID(ctx, p.CustomerID); err != nil {
		return fmt.Errorf("customer %d: %w", p.CustomerID, err)
	}
	return s.policyRepo.Create(ctx, p)
}

func (s *insuranceService) GetPolicy(ctx context.Context, id int32) (*domain.InsurancePolicy, error) {
	return s.policyRepo.GetByID(ctx, id)
}

func (s *insuranceService) FindPolicyByNumber(ctx context.Context, number string) (*domain.InsurancePolicy, error) {
	return s.policyRepo.GetByPolicyNumber(ctx, number)
}

// UpdatePolicy re-reads the stored row and carries the mutable fields
// over one by one, so the policy number can never be overwritten by a
// stale or malicious payload. A row that vanished between the read and
// the write surfaces as ErrConflict from the repository.
func (s *insuranceService) UpdatePolicy(ctx context.Context, p *domain.InsurancePolicy) error {
	stored, err := s.policyRepo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	stored.CustomerID = p.CustomerID
	stored.Provider = p.Provider
	stored.CoverageType = p.CoverageType
	stored.PremiumCents = p.PremiumCents
	stored.ValidFrom = p.ValidFrom
	stored.ValidUntil = p.ValidUntil
	return s.policyRepo.Update(ctx, stored)
}

func (s *insuranceService) ListCustomerPolicies(ctx context.Context, customerID int32) ([]domain.InsurancePolicy, error) {
	return s.policyRepo.ListByCustomer(ctx, customerID)
}

func (s *insuranceService) RemovePolicy(ctx context.Context, id int32) error {
	return s.policyRepo.Delete(ctx, id)
}
