package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID         uuid.UUID
	AuthToken  string
	UserID     string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	LastSeenAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
