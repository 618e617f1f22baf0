package service

import (
	"context"
	"testing"

	"algonest_webclient/internal/gateway"
	"algonest_webclient/internal/model"
	"algonest_webclient/internal/service/mocks"
	"algonest_webclient/internal/validation"
	"algonest_webclient/internal/wallet"
	"algonest_webclient/internal/withdrawal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWalletService(t *testing.T, backend *mocks.MockWalletBackend) *WalletService {
	t.Helper()
	v, err := wallet.NewValidator(wallet.Config{})
	require.NoError(t, err)
	return NewWalletService(backend, v, RechargeConfig{})
}

func TestWalletService_SaveWallet(t *testing.T) {
	backend := &mocks.MockWalletBackend{}
	s := newWalletService(t, backend)

	_, err := s.SaveWallet(context.Background(), model.WalletBinding{CoinName: "TRX/USDT", WalletAddress: "abc"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Invalid TRX address. T... (34 chars starting with T)", verrs["wallet_address"])
	backend.AssertNotCalled(t, "SaveWallet", mock.Anything, mock.Anything)

	good := model.WalletBinding{CoinName: "TRX/USDT", WalletAddress: "TUdb2PtkoDAKFiSZExwgG6i2gAX1Lz2hf7"}
	backend.On("SaveWallet", mock.Anything, good).Return(&gateway.Result{}, nil)

	msg, err := s.SaveWallet(context.Background(), model.WalletBinding{CoinName: good.CoinName, WalletAddress: " " + good.WalletAddress + " "})
	require.NoError(t, err)
	assert.Equal(t, "Wallet updated successfully!", msg)
}

func TestWalletService_Wallet(t *testing.T) {
	backend := &mocks.MockWalletBackend{}
	s := newWalletService(t, backend)

	backend.On("Wallets", mock.Anything).Return(&model.Wallets{
		FiatDetails: []model.WalletBinding{{CoinName: "SOL/USDT", WalletAddress: "x"}},
	}, nil)

	view, err := s.Wallet(context.Background())
	require.NoError(t, err)
	require.NotNil(t, view.Binding)
	assert.Equal(t, "SOL", view.Binding.Network())
	assert.Empty(t, view.Bank)
	assert.NotEmpty(t, view.Options)
}

func TestWalletService_InvestRequiresProof(t *testing.T) {
	backend := &mocks.MockWalletBackend{}
	s := newWalletService(t, backend)

	_, err := s.Invest(context.Background(), validation.RechargeForm{Amount: "50", PaymentMethod: "TON/TON"}, "", nil)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Please upload a proof of payment.", verrs["proof"])

	backend.On("Invest", mock.Anything, mock.MatchedBy(func(d model.Deposit) bool {
		return d.Amount == 50 && d.ProofName == "p.png"
	})).Return(nil, &gateway.APIError{Message: "Deposit failed."})

	_, err = s.Invest(context.Background(), validation.RechargeForm{Amount: "50", PaymentMethod: "TON/TON"}, "p.png", []byte("x"))
	assert.EqualError(t, err, "Deposit failed.")
}

func TestWalletService_RechargeInfoDefaults(t *testing.T) {
	s := newWalletService(t, &mocks.MockWalletBackend{})
	info := s.RechargeInfo()
	assert.Len(t, info.Addresses, 3)
	assert.Equal(t, "Admin Bank", info.Bank.BankName)
}

func TestWithdrawService_Withdraw(t *testing.T) {
	tests := []struct {
		name          string
		form          validation.WithdrawForm
		mockSetup     func(b *mocks.MockWithdrawBackend)
		expectedMsg   string
		expectedError string
	}{
		{
			name:          "Below minimum skips the backend",
			form:          validation.WithdrawForm{Amount: "2", PaymentMethod: "fiat"},
			mockSetup:     func(b *mocks.MockWithdrawBackend) {},
			expectedError: "The minimum withdrawal amount is $3.",
		},
		{
			name: "Insufficient balance",
			form: validation.WithdrawForm{Amount: "50", PaymentMethod: "fiat"},
			mockSetup: func(b *mocks.MockWithdrawBackend) {
				b.On("WithdrawalAccount", mock.Anything).Return(&model.WithdrawalAccount{Balance: 12.5}, nil)
			},
			expectedError: "Insufficient balance. Your available balance is $12.50",
		},
		{
			name: "Submitted",
			form: validation.WithdrawForm{Amount: "10", PaymentMethod: "fiat"},
			mockSetup: func(b *mocks.MockWithdrawBackend) {
				b.On("WithdrawalAccount", mock.Anything).Return(&model.WithdrawalAccount{Balance: 12.5}, nil)
				b.On("Withdraw", mock.Anything, model.WithdrawalRequest{Amount: 10, PaymentMethod: "fiat"}).
					Return(&gateway.Result{}, nil)
			},
			expectedMsg: "Withdrawal request submitted successfully!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mocks.MockWithdrawBackend{}
			tt.mockSetup(backend)
			s := NewWithdrawService(backend, withdrawal.Policy{})

			msg, err := s.Withdraw(context.Background(), tt.form)
			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				var ce *withdrawal.CheckError
				assert.ErrorAs(t, err, &ce)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedMsg, msg)
			}
			backend.AssertExpectations(t)
		})
	}
}

func TestWithdrawService_Account(t *testing.T) {
	backend := &mocks.MockWithdrawBackend{}
	backend.On("WithdrawalAccount", mock.Anything).Return(&model.WithdrawalAccount{Balance: 100}, nil)
	s := NewWithdrawService(backend, withdrawal.Policy{FeeRate: 0.2, Minimum: 5})

	view, err := s.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.2, view.FeeRate)
	assert.Equal(t, "80.00", s.Preview(100))
	assert.Equal(t, "0.00", s.Preview(4))
}
