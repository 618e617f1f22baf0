package service

import (
	"context"
	"math"

	"algonest_webclient/internal/model"
	"algonest_webclient/internal/validation"
	"algonest_webclient/internal/withdrawal"
)

type WithdrawView struct {
	Balance model.Amount `json:"balance"`
	FeeRate float64      `json:"fee_rate"`
	Minimum float64      `json:"minimum"`
}

type WithdrawService struct {
	backend WithdrawBackend
	policy  withdrawal.Policy
}

func NewWithdrawService(backend WithdrawBackend, policy withdrawal.Policy) *WithdrawService {
	if policy.FeeRate == 0 && policy.Minimum == 0 {
		policy = withdrawal.DefaultPolicy
	}
	return &WithdrawService{backend: backend, policy: policy}
}

func (s *WithdrawService) Account(ctx context.Context) (*WithdrawView, error) {
	acc, err := s.backend.WithdrawalAccount(ctx)
	if err != nil {
		return nil, err
	}
	return &WithdrawView{
		Balance: acc.Balance,
		FeeRate: s.policy.FeeRate,
		Minimum: s.policy.Minimum,
	}, nil
}

// Preview is the amount the user would receive. The backend applies the fee.
func (s *WithdrawService) Preview(amount float64) string {
	return s.policy.Preview(amount)
}

// Withdraw checks the request against the minimum and the current balance
// before sending it. Failed checks are *withdrawal.CheckError.
func (s *WithdrawService) Withdraw(ctx context.Context, form validation.WithdrawForm) (string, error) {
	amount, errs := form.Validate()
	if err := errs.Err(); err != nil {
		return "", err
	}

	if err := s.policy.Check(amount, math.MaxFloat64); err != nil {
		return "", err
	}

	acc, err := s.backend.WithdrawalAccount(ctx)
	if err != nil {
		return "", err
	}
	if err = s.policy.Check(amount, acc.Balance.Float64()); err != nil {
		return "", err
	}

	res, err := s.backend.Withdraw(ctx, model.WithdrawalRequest{
		Amount:        amount,
		PaymentMethod: form.PaymentMethod,
	})
	if err != nil {
		return "", err
	}

	return messageOr(res, "Withdrawal request submitted successfully!"), nil
}
