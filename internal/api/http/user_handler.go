package http

import (
	"errors"
	"net/http"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
	"vrms-backend/internal/security"
	"vrms-backend/internal/service"
)

// UserHandler serves registration, login, and verification endpoints.
type UserHandler struct {
	users  service.UserService
	tokens security.TokenManager
}

func NewUserHandler(users service.UserService, tokens security.TokenManager) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

type registerCustomerRequest struct {
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Password string          `json:"password"`
	Profile  domain.Customer `json:"profile"`
}

func (h *UserHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req registerCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	user, err := h.users.RegisterCustomer(r.Context(), req.Email, req.Username, req.Password, &req.Profile)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

type registerAgentRequest struct {
	Email    string       `json:"email"`
	Username string       `json:"username"`
	Password string       `json:"password"`
	Profile  domain.Agent `json:"profile"`
}

func (h *UserHandler) RegisterAgent(w http.ResponseWriter, r *http.Request) {
	var req registerAgentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	user, err := h.users.RegisterAgent(r.Context(), req.Email, req.Username, req.Password, &req.Profile)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, refreshToken, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	accessToken, err := h.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// GetProfile returns the authenticated user's role profile: the customer
// profile when one exists, otherwise the agent profile.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	customer, err := h.users.GetCustomerProfile(r.Context(), claims.UserID)
	if err == nil {
		respondJSON(w, http.StatusOK, map[string]any{"role": "customer", "customer": customer})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		respondServiceError(w, err)
		return
	}
	agent, err := h.users.GetAgentProfile(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"role": "agent", "agent": agent})
}

// RequestVerificationCode mails a fresh code to the authenticated user.
func (h *UserHandler) RequestVerificationCode(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := h.users.RequestVerificationCode(r.Context(), claims.UserID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, nil)
}

type verifyCodeRequest struct {
	Code string `json:"code"`
}

func (h *UserHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req verifyCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.users.VerifyCode(r.Context(), claims.UserID, req.Code); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
