package model

import "strings"

type WalletBinding struct {
	CoinName      string `json:"coin_name" form:"coin_name"`
	WalletAddress string `json:"wallet_address" form:"wallet_address"`
}

// Network returns the "<NETWORK>" half of a "<NETWORK>/<ASSET>" coin name.
func (w WalletBinding) Network() string {
	network, _, _ := strings.Cut(w.CoinName, "/")
	return network
}

type BankDetails struct {
	AccountNumber string `json:"account_number" mapstructure:"accountNumber"`
	BankName      string `json:"bank_name" mapstructure:"bankName"`
	AccountName   string `json:"account_name" mapstructure:"accountName"`
}

type Wallets struct {
	FiatDetails []WalletBinding `json:"fiat_details"`
	BankDetails []BankDetails   `json:"bank_details"`
}

// PaymentAddress is a platform-owned deposit address shown on the recharge screen.
type PaymentAddress struct {
	Network string `json:"network" mapstructure:"network"`
	Address string `json:"address" mapstructure:"address"`
}

type Deposit struct {
	Amount        float64
	PaymentMethod string
	Narration     string
	ProofName     string
	Proof         []byte
}

type WithdrawalAccount struct {
	Balance Amount `json:"balance"`
}

type WithdrawalRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}
