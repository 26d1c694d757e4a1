package http

import (
	"net/http"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/service"
	"vrms-backend/internal/utils"
)

// ConditionHandler serves the document-store endpoints: condition
// snapshots, vehicle history, and ratings.
type ConditionHandler struct {
	conditions service.ConditionService
}

func NewConditionHandler(conditions service.ConditionService) *ConditionHandler {
	return &ConditionHandler{conditions: conditions}
}

func (h *ConditionHandler) RecordPreCondition(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var c domain.VehiclePreCondition
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.VehicleID = vehicleID
	if err := h.conditions.RecordPreCondition(r.Context(), &c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

type postConditionResponse struct {
	Condition domain.VehiclePostCondition `json:"condition"`
	NewDamage utils.DamageDiff            `json:"new_damage"`
}

// RecordPostCondition stores the snapshot and reports which damage flags
// are new relative to the latest pre-condition baseline.
func (h *ConditionHandler) RecordPostCondition(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var c domain.VehiclePostCondition
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.VehicleID = vehicleID
	diff, err := h.conditions.RecordPostCondition(r.Context(), &c)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, postConditionResponse{Condition: c, NewDamage: diff})
}

func (h *ConditionHandler) GetPreCondition(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.conditions.GetPreCondition(r.Context(), vehicleID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *ConditionHandler) GetPostCondition(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.conditions.GetPostCondition(r.Context(), vehicleID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *ConditionHandler) AppendHistory(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var entry domain.VehicleHistory
	if err := decodeJSON(r, &entry); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry.VehicleID = vehicleID
	if err := h.conditions.AppendHistory(r.Context(), &entry); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (h *ConditionHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	entries, err := h.conditions.ListHistory(r.Context(), vehicleID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *ConditionHandler) RateVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var rating domain.VehicleRating
	if err := decodeJSON(r, &rating); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rating.VehicleID = vehicleID
	if err := h.conditions.RateVehicle(r.Context(), &rating); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rating)
}

func (h *ConditionHandler) ListRatings(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	ratings, err := h.conditions.ListRatings(r.Context(), vehicleID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ratings)
}
