package service

import (
	"context"
	"strings"

	"algonest_webclient/internal/model"
	"algonest_webclient/internal/validation"
	"algonest_webclient/internal/wallet"
)

type RechargeConfig struct {
	Addresses []model.PaymentAddress `mapstructure:"addresses"`
	Bank      model.BankDetails      `mapstructure:"bank"`
}

var DefaultRecharge = RechargeConfig{
	Addresses: []model.PaymentAddress{
		{Network: "TRON", Address: "TUdb2PtkoDAKFiSZExwgG6i2gAX1Lz2hf7"},
		{Network: "Solana", Address: "HSoycY7wwXo2Y6ZfaWp4hriDgASUWCgGroGMmBZBKtBq"},
		{Network: "TON", Address: "UQCURJpI9cYd_0dm9Bbgwqjt19aSR08uWMv0Um5sILCLtdxu"},
	},
	Bank: model.BankDetails{
		AccountNumber: "9876543210",
		BankName:      "Admin Bank",
		AccountName:   "Admin Doe",
	},
}

type WalletView struct {
	Binding *model.WalletBinding `json:"binding,omitempty"`
	Bank    []model.BankDetails  `json:"bank_details"`
	Options []wallet.Option      `json:"options"`
}

type RechargeInfo struct {
	Addresses []model.PaymentAddress `json:"addresses"`
	Bank      model.BankDetails      `json:"bank"`
	Methods   []wallet.Option        `json:"methods"`
}

type WalletService struct {
	backend   WalletBackend
	validator *wallet.Validator
	recharge  RechargeConfig
}

func NewWalletService(backend WalletBackend, validator *wallet.Validator, recharge RechargeConfig) *WalletService {
	if len(recharge.Addresses) == 0 {
		recharge.Addresses = DefaultRecharge.Addresses
	}
	if recharge.Bank == (model.BankDetails{}) {
		recharge.Bank = DefaultRecharge.Bank
	}
	return &WalletService{backend: backend, validator: validator, recharge: recharge}
}

func (s *WalletService) Wallet(ctx context.Context) (*WalletView, error) {
	w, err := s.backend.Wallets(ctx)
	if err != nil {
		return nil, err
	}

	view := &WalletView{
		Bank:    w.BankDetails,
		Options: s.validator.Options(),
	}
	if view.Bank == nil {
		view.Bank = []model.BankDetails{}
	}
	if len(w.FiatDetails) > 0 {
		b := w.FiatDetails[0]
		view.Binding = &b
	}

	return view, nil
}

// CheckAddress validates an address without saving it. The wallet screen
// calls it as the user types.
func (s *WalletService) CheckAddress(coinName, address string) error {
	return s.validator.Validate(coinName, address)
}

func (s *WalletService) SaveWallet(ctx context.Context, binding model.WalletBinding) (string, error) {
	binding.WalletAddress = strings.TrimSpace(binding.WalletAddress)
	if err := s.validator.Validate(binding.CoinName, binding.WalletAddress); err != nil {
		return "", validation.Errors{"wallet_address": err.Error()}
	}

	if _, err := s.backend.SaveWallet(ctx, binding); err != nil {
		return "", err
	}

	return "Wallet updated successfully!", nil
}

func (s *WalletService) RechargeInfo() RechargeInfo {
	addrs := make([]model.PaymentAddress, len(s.recharge.Addresses))
	copy(addrs, s.recharge.Addresses)
	return RechargeInfo{
		Addresses: addrs,
		Bank:      s.recharge.Bank,
		Methods:   s.validator.Options(),
	}
}

// Invest submits a recharge. proof is nil when the user attached no file.
func (s *WalletService) Invest(ctx context.Context, form validation.RechargeForm, proofName string, proof []byte) (string, error) {
	if err := form.Validate(proof != nil).Err(); err != nil {
		return "", err
	}

	amount, _ := validation.ParseAmount(form.Amount)
	res, err := s.backend.Invest(ctx, model.Deposit{
		Amount:        amount,
		PaymentMethod: form.PaymentMethod,
		Narration:     strings.TrimSpace(form.Narration),
		ProofName:     proofName,
		Proof:         proof,
	})
	if err != nil {
		return "", err
	}

	return messageOr(res, "Deposit submitted successfully."), nil
}
