package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/logger"
	"vrms-backend/internal/repository"
	"vrms-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCodeInvalid        = errors.New("verification code is invalid")
	ErrCodeExpired        = errors.New("verification code has expired")
)

const verificationCodeTTL = 15 * time.Minute

type userService struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	agentRepo    repository.AgentRepository
	emailSvc     EmailService
	tokens       security.TokenManager
}

func NewUserService(
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	agentRepo repository.AgentRepository,
	emailSvc EmailService,
	tokens security.TokenManager,
) UserService {
	return &userService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		agentRepo:    agentRepo,
		emailSvc:     emailSvc,
		tokens:       tokens,
	}
}

func (s *userService) RegisterCustomer(ctx context.Context, email, username, password string, profile *domain.Customer) (*domain.User, error) {
	user, err := s.createUser(ctx, email, username, password)
	if err != nil {
		return nil, err
	}
	profile.UserID = user.ID
	if err := s.customerRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create customer profile: %w", err)
	}
	return user, nil
}

func (s *userService) RegisterAgent(ctx context.Context, email, username, password string, profile *domain.Agent) (*domain.User, error) {
	user, err := s.createUser(ctx, email, username, password)
	if err != nil {
		return nil, err
	}
	profile.UserID = user.ID
	if err := s.agentRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create agent profile: %w", err)
	}
	return user, nil
}

func (s *userService) createUser(ctx context.Context, email, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	user.RefreshToken = refresh
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, "", err
	}
	return user, refresh, nil
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) GetCustomerProfile(ctx context.Context, userID int32) (*domain.Customer, error) {
	return s.customerRepo.GetByUserID(ctx, userID)
}

func (s *userService) GetAgentProfile(ctx context.Context, userID int32) (*domain.Agent, error) {
	return s.agentRepo.GetByUserID(ctx, userID)
}

// RequestVerificationCode creates a short-lived code and emails it. A
// failed email send does not roll the code back; the user can re-request.
func (s *userService) RequestVerificationCode(ctx context.Context, userID int32) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	vc := &domain.VerificationCode{
		UserID:    userID,
		Code:      code,
		ExpiresAt: time.Now().Add(verificationCodeTTL),
	}
	if err := s.userRepo.CreateVerificationCode(ctx, vc); err != nil {
		return fmt.Errorf("create verification code: %w", err)
	}

	if err := s.emailSvc.SendVerificationCode(ctx, user.Email, user.Username, code); err != nil {
		logger.ErrorContext(ctx, "Verification code created but email not sent", "user_id", userID, "error", err)
		return err
	}
	return nil
}

// VerifyCode consumes the code: it is deleted whether expired or used.
func (s *userService) VerifyCode(ctx context.Context, userID int32, code string) error {
	vc, err := s.userRepo.GetVerificationCode(ctx, userID, code)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCodeInvalid
	}
	if err != nil {
		return err
	}

	defer func() {
		if err := s.userRepo.DeleteVerificationCode(ctx, vc.ID); err != nil {
			logger.WarnContext(ctx, "Used verification code not deleted", "code_id", vc.ID, "error", err)
		}
	}()

	if vc.Expired(time.Now()) {
		return ErrCodeExpired
	}
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
