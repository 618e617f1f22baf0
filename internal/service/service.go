package service

import (
	"context"

	"algonest_webclient/internal/gateway"
	"algonest_webclient/internal/model"
)

type Service struct {
	*AuthService
	*AccountService
	*BotService
	*WalletService
	*WithdrawService
	*ReferralService
	*TransactionService
	*SupportService
}

func NewService(
	auth *AuthService,
	account *AccountService,
	bots *BotService,
	wallets *WalletService,
	withdraw *WithdrawService,
	referrals *ReferralService,
	transactions *TransactionService,
	support *SupportService,
) *Service {
	return &Service{
		AuthService:        auth,
		AccountService:     account,
		BotService:         bots,
		WalletService:      wallets,
		WithdrawService:    withdraw,
		ReferralService:    referrals,
		TransactionService: transactions,
		SupportService:     support,
	}
}

type AuthBackend interface {
	Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error)
	Register(ctx context.Context, reg model.Registration) (*gateway.Result, error)
	GenerateResetKey(ctx context.Context, email string) (*gateway.Result, error)
	ResetPassword(ctx context.Context, key, newPassword string) (*gateway.Result, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (*gateway.Result, error)
	ResendVerification(ctx context.Context) (*gateway.Result, error)
}

type AccountBackend interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	Profile(ctx context.Context) (*model.Profile, error)
}

type BotBackend interface {
	Bots(ctx context.Context) ([]model.Bot, error)
	BotDetails(ctx context.Context, id string) (*model.BotDetails, error)
	PurchaseBot(ctx context.Context, id string) (string, error)
	ActiveBots(ctx context.Context) ([]model.ActiveBotSubscription, error)
	ActiveBotDetails(ctx context.Context, id string) (*model.ActiveBotSubscription, error)
}

type WalletBackend interface {
	Wallets(ctx context.Context) (*model.Wallets, error)
	SaveWallet(ctx context.Context, binding model.WalletBinding) (*gateway.Result, error)
	Invest(ctx context.Context, d model.Deposit) (*gateway.Result, error)
}

type WithdrawBackend interface {
	WithdrawalAccount(ctx context.Context) (*model.WithdrawalAccount, error)
	Withdraw(ctx context.Context, req model.WithdrawalRequest) (*gateway.Result, error)
}

type ReferralBackend interface {
	Referrals(ctx context.Context) (*model.ReferralSummary, error)
}

type TransactionBackend interface {
	Transactions(ctx context.Context) (*model.TransactionHistory, error)
}

type SupportBackend interface {
	SubmitReport(ctx context.Context, report model.SupportReport) (*gateway.Result, error)
}

// messageOr returns the server's confirmation text, or fallback when it sent none.
func messageOr(res *gateway.Result, fallback string) string {
	if res != nil && res.Message != "" {
		return res.Message
	}
	return fallback
}
