package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type userMocks struct {
	users     *MockUserRepo
	customers *MockCustomerRepo
	agents    *MockAgentRepo
	email     *MockEmailService
	tokens    *MockTokenManager
}

func newUserServiceForTest() (UserService, *userMocks) {
	m := &userMocks{
		users:     new(MockUserRepo),
		customers: new(MockCustomerRepo),
		agents:    new(MockAgentRepo),
		email:     new(MockEmailService),
		tokens:    new(MockTokenManager),
	}
	svc := NewUserService(m.users, m.customers, m.agents, m.email, m.tokens)
	return svc, m
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestUserService_RegisterCustomer(t *testing.T) {
	svc, m := newUserServiceForTest()
	ctx := context.Background()

	m.users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 9
	}).Return(nil)
	m.customers.On("Create", ctx, mock.AnythingOfType("*domain.Customer")).Return(nil)

	profile := &domain.Customer{FirstName: "Ada", LastName: "Lovelace"}
	user, err := svc.RegisterCustomer(ctx, "ada@example.com", "ada", "s3cret", profile)
	assert.NoError(t, err)
	assert.Equal(t, int32(9), user.ID)
	assert.Equal(t, int32(9), profile.UserID)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success stores a fresh refresh token", func(t *testing.T) {
		svc, m := newUserServiceForTest()
		m.users.On("GetByEmail", ctx, "ada@example.com").Return(&domain.User{
			ID:           9,
			Email:        "ada@example.com",
			PasswordHash: hashedPassword(t, "s3cret"),
		}, nil)
		m.tokens.On("GenerateRefreshToken", int32(9), "ada@example.com").Return("refresh-token", nil)
		m.users.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, refresh, err := svc.Login(ctx, "ada@example.com", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, "refresh-token", refresh)
		assert.Equal(t, "refresh-token", user.RefreshToken)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, m := newUserServiceForTest()
		m.users.On("GetByEmail", ctx, "ada@example.com").Return(&domain.User{
			ID:           9,
			Email:        "ada@example.com",
			PasswordHash: hashedPassword(t, "s3cret"),
		}, nil)

		_, _, err := svc.Login(ctx, "ada@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.tokens.AssertNotCalled(t, "GenerateRefreshToken", mock.Anything, mock.Anything)
	})

	t.Run("Unknown email maps to the same error", func(t *testing.T) {
		svc, m := newUserServiceForTest()
		m.users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_RequestVerificationCode(t *testing.T) {
	svc, m := newUserServiceForTest()
	ctx := context.Background()

	m.users.On("GetByID", ctx, int32(9)).Return(&domain.User{ID: 9, Email: "ada@example.com", Username: "ada"}, nil)
	var issued string
	m.users.On("CreateVerificationCode", ctx, mock.AnythingOfType("*domain.VerificationCode")).Run(func(args mock.Arguments) {
		vc := args.Get(1).(*domain.VerificationCode)
		issued = vc.Code
		assert.True(t, vc.ExpiresAt.After(time.Now()))
	}).Return(nil)
	m.email.On("SendVerificationCode", ctx, "ada@example.com", "ada", mock.AnythingOfType("string")).Return(nil)

	assert.NoError(t, svc.RequestVerificationCode(ctx, 9))
	assert.Len(t, issued, 6)
	m.email.AssertCalled(t, "SendVerificationCode", ctx, "ada@example.com", "ada", issued)
}

func TestUserService_VerifyCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid code is consumed", func(t *testing.T) {
		svc, m := newUserServiceForTest()
		m.users.On("GetVerificationCode", ctx, int32(9), "123456").Return(&domain.VerificationCode{
			ID:        3,
			UserID:    9,
			Code:      "123456",
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)
		m.users.On("DeleteVerificationCode", ctx, int32(3)).Return(nil)

		assert.NoError(t, svc.VerifyCode(ctx, 9, "123456"))
		m.users.AssertExpectations(t)
	})

	t.Run("Expired code is still deleted", func(t *testing.T) {
		svc, m := newUserServiceForTest()
		m.users.On("GetVerificationCode", ctx, int32(9), "123456").Return(&domain.VerificationCode{
			ID:        3,
			UserID:    9,
			Code:      "123456",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
		m.users.On("DeleteVerificationCode", ctx, int32(3)).Return(nil)

		assert.ErrorIs(t, svc.VerifyCode(ctx, 9, "123456"), ErrCodeExpired)
		m.users.AssertCalled(t, "DeleteVerificationCode", ctx, int32(3))
	})

	t.Run("Unknown code", func(t *testing.T) {
		svc, m := newUserServiceForTest()
		m.users.On("GetVerificationCode", ctx, int32(9), "000000").Return(nil, repository.ErrNotFound)

		assert.ErrorIs(t, svc.VerifyCode(ctx, 9, "000000"), ErrCodeInvalid)
		m.users.AssertNotCalled(t, "DeleteVerificationCode", mock.Anything, mock.Anything)
	})
}
