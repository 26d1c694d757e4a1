package http

import (
	"net/http"

	"vrms-backend/internal/service"
	"vrms-backend/internal/utils"
)

// PaymentHandler serves the payment lifecycle endpoints. Status moves
// only along pending -> pre-paid -> paid; refunds leave status alone.
type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createPrepaymentRequest struct {
	ReservationID int32 `json:"reservation_id"`
}

func (h *PaymentHandler) CreatePrepayment(w http.ResponseWriter, r *http.Request) {
	var req createPrepaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	payment, err := h.payments.CreatePrepayment(r.Context(), req.ReservationID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) ConfirmPrepayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	payment, err := h.payments.ConfirmPrepayment(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) ConfirmFinalSettlement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	payment, err := h.payments.ConfirmFinalSettlement(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	payment, err := h.payments.Refund(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if r.URL.Query().Get("include") == "reservation" {
		pr, err := h.payments.GetPaymentWithReservation(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, pr)
		return
	}

	payment, err := h.payments.GetPayment(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) GetPendingByReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, err := pathID(r, "reservationID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	payment, err := h.payments.GetPendingByReservation(r.Context(), reservationID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

// ListPending returns pending prepayments for reservations starting in
// the from/to date window, for the agent follow-up view.
func (h *PaymentHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	from, err := utils.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := utils.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	payments, err := h.payments.ListPendingPayments(r.Context(), from, to)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	receipt, err := h.payments.GetReceiptForPayment(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}
