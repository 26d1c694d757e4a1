package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vrms-backend/internal/logger"
	"vrms-backend/internal/repository"
	"vrms-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps well-known service and repository errors onto
// HTTP statuses; anything unrecognized becomes a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrConflict):
		respondError(w, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrVehicleUnavailable),
		errors.Is(err, service.ErrVehicleAlreadyHeld),
		errors.Is(err, service.ErrReservationPickedUp),
		errors.Is(err, service.ErrAlreadyRefunded),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrHardDeleteDisabled):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrCodeInvalid),
		errors.Is(err, service.ErrCodeExpired):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Unhandled service error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathID extracts a numeric path variable registered with mux.
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return int32(id), nil
}
