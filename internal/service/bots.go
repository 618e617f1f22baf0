package service

import (
	"context"
	"errors"
	"strings"

	"algonest_webclient/internal/model"
)

var ErrMissingID = errors.New("missing id")

type BotService struct {
	backend BotBackend
}

func NewBotService(backend BotBackend) *BotService {
	return &BotService{backend: backend}
}

func (s *BotService) Bots(ctx context.Context) ([]model.Bot, error) {
	return s.backend.Bots(ctx)
}

func (s *BotService) BotDetails(ctx context.Context, id string) (*model.BotDetails, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingID
	}
	return s.backend.BotDetails(ctx, id)
}

func (s *BotService) PurchaseBot(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrMissingID
	}
	return s.backend.PurchaseBot(ctx, id)
}

func (s *BotService) ActiveBots(ctx context.Context) ([]model.ActiveBotSubscription, error) {
	return s.backend.ActiveBots(ctx)
}

func (s *BotService) ActiveBotDetails(ctx context.Context, id string) (*model.ActiveBotSubscription, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingID
	}
	return s.backend.ActiveBotDetails(ctx, id)
}
