package http

import (
	"net/http"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/service"
	"vrms-backend/internal/utils"
)

// ReservationHandler serves the booking lifecycle endpoints.
type ReservationHandler struct {
	reservations service.ReservationService
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type createReservationRequest struct {
	CustomerID int32  `json:"customer_id"`
	VehicleID  int32  `json:"vehicle_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid end_date")
		return
	}
	if end.Before(start) {
		respondError(w, http.StatusBadRequest, "end_date before start_date")
		return
	}

	res, err := h.reservations.CreateReservation(r.Context(), req.CustomerID, req.VehicleID, start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch r.URL.Query().Get("include") {
	case "customer":
		rc, err := h.reservations.GetReservationWithCustomer(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, rc)
		return
	case "vehicle":
		rv, err := h.reservations.GetReservationWithVehicle(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, rv)
		return
	}

	res, err := h.reservations.GetReservation(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.reservations.CancelReservation(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// MarkPickedUp records the vehicle hand-over and takes it off the
// available list.
func (h *ReservationHandler) MarkPickedUp(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.reservations.MarkPickedUp(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// MarkBroughtBack records the return and releases the vehicle.
func (h *ReservationHandler) MarkBroughtBack(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.reservations.MarkBroughtBack(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ListCalendar returns the reservation calendar for ?from=...&to=....
func (h *ReservationHandler) ListCalendar(w http.ResponseWriter, r *http.Request) {
	from, err := utils.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := utils.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid to date")
		return
	}

	entries, err := h.reservations.ListCalendar(r.Context(), from, to)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *ReservationHandler) ListCustomerReservations(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.reservations.ListCustomerReservations(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *ReservationHandler) RecordTripDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var td domain.TripDetails
	if err := decodeJSON(r, &td); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	td.ReservationID = id
	if err := h.reservations.RecordTripDetails(r.Context(), &td); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, td)
}
