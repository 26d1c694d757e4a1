package http

import (
	"net/http"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/service"
)

// InsuranceHandler serves customer insurance policy endpoints.
type InsuranceHandler struct {
	insurance service.InsuranceService
}

func NewInsuranceHandler(insurance service.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{insurance: insurance}
}

func (h *InsuranceHandler) AddPolicy(w http.ResponseWriter, r *http.Request) {
	var p domain.InsurancePolicy
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.PolicyNumber == "" {
		respondError(w, http.StatusBadRequest, "policy_number is required")
		return
	}
	if err := h.insurance.AddPolicy(r.Context(), &p); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (h *InsuranceHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.insurance.GetPolicy(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// LookupPolicy resolves a policy by its business key.
func (h *InsuranceHandler) LookupPolicy(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("policy_number")
	if number == "" {
		respondError(w, http.StatusBadRequest, "policy_number is required")
		return
	}
	p, err := h.insurance.FindPolicyByNumber(r.Context(), number)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// UpdatePolicy updates the mutable fields; the policy number in the body
// is ignored.
func (h *InsuranceHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var p domain.InsurancePolicy
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id
	if err := h.insurance.UpdatePolicy(r.Context(), &p); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *InsuranceHandler) ListCustomerPolicies(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	policies, err := h.insurance.ListCustomerPolicies(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, policies)
}

func (h *InsuranceHandler) RemovePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.insurance.RemovePolicy(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
