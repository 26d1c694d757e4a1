package http

import (
	"net/http"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/service"
)

// FleetHandler serves vehicle and photo management endpoints.
type FleetHandler struct {
	fleet service.FleetService
}

func NewFleetHandler(fleet service.FleetService) *FleetHandler {
	return &FleetHandler{fleet: fleet}
}

type addVehicleRequest struct {
	Vehicle    domain.Vehicle     `json:"vehicle"`
	Car        *domain.Car        `json:"car,omitempty"`
	Bus        *domain.Bus        `json:"bus,omitempty"`
	Truck      *domain.Truck      `json:"truck,omitempty"`
	Motorcycle *domain.Motorcycle `json:"motorcycle,omitempty"`
}

// AddVehicle creates the vehicle row plus the subtype row for its kind.
// Exactly one subtype body matching vehicle.kind must be present.
func (h *FleetHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var req addVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var err error
	switch req.Vehicle.Kind {
	case domain.VehicleKindCar:
		if req.Car == nil {
			respondError(w, http.StatusBadRequest, "car details required")
			return
		}
		err = h.fleet.AddCar(r.Context(), &req.Vehicle, req.Car)
	case domain.VehicleKindBus:
		if req.Bus == nil {
			respondError(w, http.StatusBadRequest, "bus details required")
			return
		}
		err = h.fleet.AddBus(r.Context(), &req.Vehicle, req.Bus)
	case domain.VehicleKindTruck:
		if req.Truck == nil {
			respondError(w, http.StatusBadRequest, "truck details required")
			return
		}
		err = h.fleet.AddTruck(r.Context(), &req.Vehicle, req.Truck)
	case domain.VehicleKindMotorcycle:
		if req.Motorcycle == nil {
			respondError(w, http.StatusBadRequest, "motorcycle details required")
			return
		}
		err = h.fleet.AddMotorcycle(r.Context(), &req.Vehicle, req.Motorcycle)
	default:
		respondError(w, http.StatusBadRequest, "unknown vehicle kind")
		return
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req.Vehicle)
}

func (h *FleetHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := h.fleet.GetVehicle(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *FleetHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var v domain.Vehicle
	if err := decodeJSON(r, &v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v.ID = id
	if err := h.fleet.UpdateVehicle(r.Context(), &v); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *FleetHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.fleet.DeleteVehicle(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListVehicles supports ?available=true and ?fuel_type=DIESEL filters,
// pushed down into the repository query.
func (h *FleetHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	var (
		vehicles []domain.Vehicle
		err      error
	)
	switch {
	case r.URL.Query().Get("available") == "true":
		vehicles, err = h.fleet.ListAvailableVehicles(r.Context())
	case r.URL.Query().Get("fuel_type") != "":
		fuel := domain.FuelType(r.URL.Query().Get("fuel_type"))
		vehicles, err = h.fleet.ListVehiclesByFuelType(r.Context(), fuel)
	default:
		vehicles, err = h.fleet.ListVehicles(r.Context())
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

// The per-kind listings take the same ?available=true and ?fuel_type=
// filters as ListVehicles, resolved against the joined vehicles row.

func (h *FleetHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	var (
		cars []domain.Car
		err  error
	)
	switch {
	case r.URL.Query().Get("available") == "true":
		cars, err = h.fleet.ListAvailableCars(r.Context())
	case r.URL.Query().Get("fuel_type") != "":
		cars, err = h.fleet.ListCarsByFuelType(r.Context(), domain.FuelType(r.URL.Query().Get("fuel_type")))
	default:
		cars, err = h.fleet.ListCars(r.Context())
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cars)
}

func (h *FleetHandler) ListBuses(w http.ResponseWriter, r *http.Request) {
	var (
		buses []domain.Bus
		err   error
	)
	switch {
	case r.URL.Query().Get("available") == "true":
		buses, err = h.fleet.ListAvailableBuses(r.Context())
	case r.URL.Query().Get("fuel_type") != "":
		buses, err = h.fleet.ListBusesByFuelType(r.Context(), domain.FuelType(r.URL.Query().Get("fuel_type")))
	default:
		buses, err = h.fleet.ListBuses(r.Context())
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, buses)
}

func (h *FleetHandler) ListTrucks(w http.ResponseWriter, r *http.Request) {
	var (
		trucks []domain.Truck
		err    error
	)
	switch {
	case r.URL.Query().Get("available") == "true":
		trucks, err = h.fleet.ListAvailableTrucks(r.Context())
	case r.URL.Query().Get("fuel_type") != "":
		trucks, err = h.fleet.ListTrucksByFuelType(r.Context(), domain.FuelType(r.URL.Query().Get("fuel_type")))
	default:
		trucks, err = h.fleet.ListTrucks(r.Context())
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trucks)
}

func (h *FleetHandler) ListMotorcycles(w http.ResponseWriter, r *http.Request) {
	var (
		motorcycles []domain.Motorcycle
		err         error
	)
	switch {
	case r.URL.Query().Get("available") == "true":
		motorcycles, err = h.fleet.ListAvailableMotorcycles(r.Context())
	case r.URL.Query().Get("fuel_type") != "":
		motorcycles, err = h.fleet.ListMotorcyclesByFuelType(r.Context(), domain.FuelType(r.URL.Query().Get("fuel_type")))
	default:
		motorcycles, err = h.fleet.ListMotorcycles(r.Context())
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, motorcycles)
}

func (h *FleetHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var p domain.Photo
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.VehicleID = id
	if err := h.fleet.AddPhoto(r.Context(), &p); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (h *FleetHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "photoID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.fleet.RemovePhoto(r.Context(), photoID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
