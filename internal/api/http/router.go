package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vrms-backend/internal/security"
	"vrms-backend/internal/service"
	"vrms-backend/internal/storage"
)

// Services bundles the service layer the router exposes.
type Services struct {
	Fleet        service.FleetService
	Reservations service.ReservationService
	Payments     service.PaymentService
	Conditions   service.ConditionService
	Users        service.UserService
	Insurance    service.InsuranceService
}

// NewRouter wires all REST endpoints. Registration and login are public;
// everything else requires a valid access token.
func NewRouter(svcs Services, tokens security.TokenManager, photos storage.PhotoStorage) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Presigned blob endpoints for the local photo backend. The URLs
	// themselves act as the credential, so these stay outside auth.
	photoUploads := NewPhotoUploadHandler(photos)
	api.HandleFunc("/upload/{token}", photoUploads.HandleUpload).Methods("PUT")
	api.HandleFunc("/download/{sig}", photoUploads.HandleDownload).Methods("GET")

	users := NewUserHandler(svcs.Users, tokens)
	api.HandleFunc("/auth/register/customer", users.RegisterCustomer).Methods("POST")
	api.HandleFunc("/auth/register/agent", users.RegisterAgent).Methods("POST")
	api.HandleFunc("/auth/login", users.Login).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	protected.HandleFunc("/users/{id:[0-9]+}", users.GetUser).Methods("GET")
	protected.HandleFunc("/users/me/profile", users.GetProfile).Methods("GET")
	protected.HandleFunc("/auth/verification-code", users.RequestVerificationCode).Methods("POST")
	protected.HandleFunc("/auth/verify", users.VerifyCode).Methods("POST")

	fleet := NewFleetHandler(svcs.Fleet)
	protected.HandleFunc("/vehicles", fleet.AddVehicle).Methods("POST")
	protected.HandleFunc("/vehicles", fleet.ListVehicles).Methods("GET")
	protected.HandleFunc("/cars", fleet.ListCars).Methods("GET")
	protected.HandleFunc("/buses", fleet.ListBuses).Methods("GET")
	protected.HandleFunc("/trucks", fleet.ListTrucks).Methods("GET")
	protected.HandleFunc("/motorcycles", fleet.ListMotorcycles).Methods("GET")
	protected.HandleFunc("/vehicles/{id:[0-9]+}", fleet.GetVehicle).Methods("GET")
	protected.HandleFunc("/vehicles/{id:[0-9]+}", fleet.UpdateVehicle).Methods("PUT")
	protected.HandleFunc("/vehicles/{id:[0-9]+}", fleet.DeleteVehicle).Methods("DELETE")
	protected.HandleFunc("/vehicles/{id:[0-9]+}/photos", fleet.AddPhoto).Methods("POST")
	protected.HandleFunc("/vehicles/{vehicleID:[0-9]+}/photos/upload-url", photoUploads.CreateUploadURL).Methods("POST")
	protected.HandleFunc("/photos/{photoID:[0-9]+}", fleet.RemovePhoto).Methods("DELETE")

	reservations := NewReservationHandler(svcs.Reservations)
	protected.HandleFunc("/reservations", reservations.CreateReservation).Methods("POST")
	protected.HandleFunc("/reservations/calendar", reservations.ListCalendar).Methods("GET")
	protected.HandleFunc("/reservations/{id:[0-9]+}", reservations.GetReservation).Methods("GET")
	protected.HandleFunc("/reservations/{id:[0-9]+}", reservations.CancelReservation).Methods("DELETE")
	protected.HandleFunc("/reservations/{id:[0-9]+}/pickup", reservations.MarkPickedUp).Methods("POST")
	protected.HandleFunc("/reservations/{id:[0-9]+}/return", reservations.MarkBroughtBack).Methods("POST")
	protected.HandleFunc("/reservations/{id:[0-9]+}/trip-details", reservations.RecordTripDetails).Methods("PUT")
	protected.HandleFunc("/customers/{customerID:[0-9]+}/reservations", reservations.ListCustomerReservations).Methods("GET")

	payments := NewPaymentHandler(svcs.Payments)
	protected.HandleFunc("/payments", payments.CreatePrepayment).Methods("POST")
	protected.HandleFunc("/payments/pending", payments.ListPending).Methods("GET")
	protected.HandleFunc("/payments/{id:[0-9]+}", payments.GetPayment).Methods("GET")
	protected.HandleFunc("/payments/{id:[0-9]+}/confirm-prepayment", payments.ConfirmPrepayment).Methods("POST")
	protected.HandleFunc("/payments/{id:[0-9]+}/confirm-settlement", payments.ConfirmFinalSettlement).Methods("POST")
	protected.HandleFunc("/payments/{id:[0-9]+}/refund", payments.Refund).Methods("POST")
	protected.HandleFunc("/payments/{id:[0-9]+}/receipt", payments.GetReceipt).Methods("GET")
	protected.HandleFunc("/reservations/{reservationID:[0-9]+}/pending-payment", payments.GetPendingByReservation).Methods("GET")

	conditions := NewConditionHandler(svcs.Conditions)
	protected.HandleFunc("/vehicles/{vehicleID:[0-9]+}/pre-condition", conditions.RecordPreCondition).Methods("POST")
	protected.HandleFunc("/vehicles/{vehicleID:[0-9]+}/pre-condition", conditions.GetPreCondition).Methods("GET")
	protected.HandleFunc("/vehicles/{vehicleID:[0-9]+}/post-condition", conditions.RecordPostCondition).Methods("POST")
	protected.HandleFunc("/vehicles/{vehicleID:[0-9]+}/post-condition", conditions.GetPostCondition).Methods("GET")
	protected.HandleFunc("/vehicles/{vehicleID:[0-9]+}/history", conditions.AppendHistory).Methods("POST")
	protected.HandleFunc("/vehicles/{vehicleID:[0-9]+}/history", conditions.ListHistory).Methods("GET")
	protected.HandleFunc("/vehicles/{vehicleID:[0-9]+}/ratings", conditions.RateVehicle).Methods("POST")
	protected.HandleFunc("/vehicles/{vehicleID:[0-9]+}/ratings", conditions.ListRatings).Methods("GET")

	insurance := NewInsuranceHandler(svcs.Insurance)
	protected.HandleFunc("/insurance-policies", insurance.AddPolicy).Methods("POST")
	protected.HandleFunc("/insurance-policies/lookup", insurance.LookupPolicy).Methods("GET")
	protected.HandleFunc("/insurance-policies/{id:[0-9]+}", insurance.GetPolicy).Methods("GET")
	protected.HandleFunc("/insurance-policies/{id:[0-9]+}", insurance.UpdatePolicy).Methods("PUT")
	protected.HandleFunc("/insurance-policies/{id:[0-9]+}", insurance.RemovePolicy).Methods("DELETE")
	protected.HandleFunc("/customers/{customerID:[0-9]+}/insurance-policies", insurance.ListCustomerPolicies).Methods("GET")

	return r
}
