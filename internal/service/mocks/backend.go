package mocks

import (
	"context"

	"algonest_webclient/internal/gateway"
	"algonest_webclient/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func result(args mock.Arguments) (*gateway.Result, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Result), args.Error(1)
}

type MockAuthBackend struct {
	mock.Mock
}

func (m *MockAuthBackend) Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResult), args.Error(1)
}

func (m *MockAuthBackend) Register(ctx context.Context, reg model.Registration) (*gateway.Result, error) {
	return result(m.Called(ctx, reg))
}

func (m *MockAuthBackend) GenerateResetKey(ctx context.Context, email string) (*gateway.Result, error) {
	return result(m.Called(ctx, email))
}

func (m *MockAuthBackend) ResetPassword(ctx context.Context, key, newPassword string) (*gateway.Result, error) {
	return result(m.Called(ctx, key, newPassword))
}

func (m *MockAuthBackend) ChangePassword(ctx context.Context, oldPassword, newPassword string) (*gateway.Result, error) {
	return result(m.Called(ctx, oldPassword, newPassword))
}

func (m *MockAuthBackend) ResendVerification(ctx context.Context) (*gateway.Result, error) {
	return result(m.Called(ctx))
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Login(ctx context.Context, token, userID string) (*model.Session, error) {
	args := m.Called(ctx, token, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionStore) Logout(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockWalletBackend struct {
	mock.Mock
}

func (m *MockWalletBackend) Wallets(ctx context.Context) (*model.Wallets, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wallets), args.Error(1)
}

func (m *MockWalletBackend) SaveWallet(ctx context.Context, binding model.WalletBinding) (*gateway.Result, error) {
	return result(m.Called(ctx, binding))
}

func (m *MockWalletBackend) Invest(ctx context.Context, d model.Deposit) (*gateway.Result, error) {
	return result(m.Called(ctx, d))
}

type MockWithdrawBackend struct {
	mock.Mock
}

func (m *MockWithdrawBackend) WithdrawalAccount(ctx context.Context) (*model.WithdrawalAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WithdrawalAccount), args.Error(1)
}

func (m *MockWithdrawBackend) Withdraw(ctx context.Context, req model.WithdrawalRequest) (*gateway.Result, error) {
	return result(m.Called(ctx, req))
}

type MockSupportBackend struct {
	mock.Mock
}

func (m *MockSupportBackend) SubmitReport(ctx context.Context, report model.SupportReport) (*gateway.Result, error) {
	return result(m.Called(ctx, report))
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, report model.SupportReport) error {
	return m.Called(ctx, report).Error(0)
}
