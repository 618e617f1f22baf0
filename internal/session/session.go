package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"algonest_webclient/internal/model"
	"algonest_webclient/internal/repository"
	"algonest_webclient/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

const (
	DefaultTTL        = 7 * 24 * time.Hour
	DefaultCookieName = "algonest_session"

	touchInterval = time.Minute
)

type Config struct {
	CookieName string        `mapstructure:"cookieName"`
	TTL        time.Duration `mapstructure:"ttl"`
}

type Repository interface {
	CreateSession(ctx context.Context, s *model.Session) error
	GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error)
	TouchSession(ctx context.Context, id uuid.UUID, seenAt time.Time) error
	DeleteSession(ctx context.Context, id uuid.UUID) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// Manager is the process-wide session store. Sessions are loaded from the
// repository on first use and cached until logout, expiry or auth failure.
type Manager struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time

	mu       sync.RWMutex
	cache    map[uuid.UUID]*model.Session
	teardown []func(id uuid.UUID)
}

func NewManager(repo Repository, cfg Config) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		repo:  repo,
		ttl:   ttl,
		now:   time.Now,
		cache: make(map[uuid.UUID]*model.Session),
	}
}

// OnTeardown registers fn to run whenever a session is destroyed.
func (m *Manager) OnTeardown(fn func(id uuid.UUID)) {
	m.mu.Lock()
	m.teardown = append(m.teardown, fn)
	m.mu.Unlock()
}

func (m *Manager) Login(ctx context.Context, token, userID string) (*model.Session, error) {
	if token == "" {
		return nil, errors.New("empty auth token")
	}

	now := m.now()
	s := &model.Session{
		ID:         uuid.New(),
		AuthToken:  token,
		UserID:     userID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(m.ttl),
		LastSeenAt: now,
	}

	if err := m.repo.CreateSession(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	m.mu.Lock()
	var replaced []uuid.UUID
	for id, cached := range m.cache {
		if cached.AuthToken == token {
			replaced = append(replaced, id)
		}
	}
	m.cache[s.ID] = s
	m.mu.Unlock()

	for _, id := range replaced {
		if err := m.destroy(ctx, id); err != nil {
			logger.Logger().Error("failed to delete replaced session",
				zap.String("session_id", id.String()),
				zap.Error(err))
		}
	}

	logger.Logger().Info("session created",
		zap.String("session_id", s.ID.String()),
		zap.String("user_id", userID))

	return copySession(s), nil
}

func (m *Manager) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	now := m.now()

	m.mu.RLock()
	s, ok := m.cache[id]
	m.mu.RUnlock()

	if !ok {
		loaded, err := m.repo.GetSession(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrSessionNotFound
			}
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		s = loaded

		m.mu.Lock()
		m.cache[id] = s
		m.mu.Unlock()
	}

	if s.Expired(now) {
		if err := m.destroy(ctx, id); err != nil {
			logger.Logger().Error("failed to purge expired session",
				zap.String("session_id", id.String()),
				zap.Error(err))
		}
		return nil, ErrSessionExpired
	}

	m.touch(ctx, id, now)

	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySession(s), nil
}

func (m *Manager) touch(ctx context.Context, id uuid.UUID, now time.Time) {
	m.mu.Lock()
	s, ok := m.cache[id]
	stale := ok && now.Sub(s.LastSeenAt) >= touchInterval
	if stale {
		s.LastSeenAt = now
	}
	m.mu.Unlock()

	if !stale {
		return
	}

	if err := m.repo.TouchSession(ctx, id, now); err != nil {
		logger.Logger().Warn("failed to touch session",
			zap.String("session_id", id.String()),
			zap.Error(err))
	}
}

func (m *Manager) Logout(ctx context.Context, id uuid.UUID) error {
	if err := m.destroy(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	logger.Logger().Info("session closed", zap.String("session_id", id.String()))
	return nil
}

func (m *Manager) destroy(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	delete(m.cache, id)
	hooks := append([]func(uuid.UUID){}, m.teardown...)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn(id)
	}

	return m.repo.DeleteSession(context.WithoutCancel(ctx), id)
}

// Sweep removes every expired session from storage and from memory.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	now := m.now()

	m.mu.Lock()
	var expired []uuid.UUID
	for id, s := range m.cache {
		if s.Expired(now) {
			expired = append(expired, id)
			delete(m.cache, id)
		}
	}
	hooks := append([]func(uuid.UUID){}, m.teardown...)
	m.mu.Unlock()

	for _, id := range expired {
		for _, fn := range hooks {
			fn(id)
		}
	}

	n, err := m.repo.DeleteExpiredSessions(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	return n, nil
}

// Token returns the bearer token of the session bound to ctx.
func (m *Manager) Token(ctx context.Context) (string, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return "", ErrSessionNotFound
	}
	return s.AuthToken, nil
}

// Expire destroys the session bound to ctx after the backend rejected it.
func (m *Manager) Expire(ctx context.Context) error {
	s, ok := FromContext(ctx)
	if !ok {
		return nil
	}

	logger.Logger().Info("session rejected by backend", zap.String("session_id", s.ID.String()))
	return m.destroy(ctx, s.ID)
}

func copySession(s *model.Session) *model.Session {
	c := *s
	return &c
}
