package support

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"algonest_webclient/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Config struct {
	TelegramBotToken string `mapstructure:"telegramBotToken"`
	ChatID           int64  `mapstructure:"chatID"`
	APIEndpoint      string `mapstructure:"apiEndpoint"`
}

// Notifier mirrors customer service reports to the support team.
type Notifier interface {
	Notify(ctx context.Context, report model.SupportReport) error
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, model.SupportReport) error { return nil }

// NewNotifier returns a Telegram notifier, or a no-op one when no bot token
// or chat is configured.
func NewNotifier(cfg Config) (Notifier, error) {
	if cfg.TelegramBotToken == "" || cfg.ChatID == 0 {
		return noopNotifier{}, nil
	}

	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.TelegramBotToken, endpoint, &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: cfg.ChatID}, nil
}

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func (n *TelegramNotifier) Notify(ctx context.Context, report model.SupportReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, formatReport(report))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}
	return nil
}

func formatReport(r model.SupportReport) string {
	var b strings.Builder
	b.WriteString("New support report\n")
	fmt.Fprintf(&b, "From: %s <%s>\n", r.Name, r.Email)
	fmt.Fprintf(&b, "Subject: %s\n\n", r.Subject)
	b.WriteString(r.Description)
	return b.String()
}
