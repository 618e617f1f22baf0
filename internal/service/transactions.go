package service

import (
	"context"

	"algonest_webclient/internal/model"
)

type TransactionService struct {
	backend TransactionBackend
}

func NewTransactionService(backend TransactionBackend) *TransactionService {
	return &TransactionService{backend: backend}
}

// Transactions returns the history, optionally narrowed to one status.
func (s *TransactionService) Transactions(ctx context.Context, status model.TransactionStatus) (*model.TransactionHistory, error) {
	h, err := s.backend.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return h, nil
	}

	status = status.Normalize()
	return &model.TransactionHistory{
		Deposits:    filterStatus(h.Deposits, status),
		Withdrawals: filterStatus(h.Withdrawals, status),
	}, nil
}

func filterStatus(in []model.Transaction, status model.TransactionStatus) []model.Transaction {
	out := make([]model.Transaction, 0, len(in))
	for _, t := range in {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
