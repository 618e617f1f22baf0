package service

import (
	"context"

	"algonest_webclient/internal/model"
)

type AccountService struct {
	backend AccountBackend
}

func NewAccountService(backend AccountBackend) *AccountService {
	return &AccountService{backend: backend}
}

func (s *AccountService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	return s.backend.Dashboard(ctx)
}

func (s *AccountService) Profile(ctx context.Context) (*model.Profile, error) {
	return s.backend.Profile(ctx)
}
