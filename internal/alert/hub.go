package alert

import (
	"sync"
	"time"

	"algonest_webclient/internal/model"
	"algonest_webclient/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultDismissAfter = 5 * time.Second
	subscriptionBuffer  = 16
)

type Config struct {
	DismissAfter time.Duration `mapstructure:"dismissAfter"`
}

type Subscription struct {
	SessionID uuid.UUID
	C         <-chan model.Alert

	id uint64
	ch chan model.Alert
}

// Hub fans alerts out to every open stream of a session.
type Hub struct {
	dismissAfter time.Duration
	now          func() time.Time

	mu     sync.Mutex
	nextID uint64
	subs   map[uuid.UUID]map[uint64]*Subscription
}

func NewHub(cfg Config) *Hub {
	d := cfg.DismissAfter
	if d <= 0 {
		d = DefaultDismissAfter
	}
	return &Hub{
		dismissAfter: d,
		now:          time.Now,
		subs:         make(map[uuid.UUID]map[uint64]*Subscription),
	}
}

func (h *Hub) Subscribe(sessionID uuid.UUID) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	ch := make(chan model.Alert, subscriptionBuffer)
	sub := &Subscription{SessionID: sessionID, C: ch, id: h.nextID, ch: ch}

	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[uint64]*Subscription)
	}
	h.subs[sessionID][sub.id] = sub

	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subs[sub.SessionID]
	if !ok {
		return
	}
	if _, ok = subs[sub.id]; !ok {
		return
	}

	delete(subs, sub.id)
	close(sub.ch)
	if len(subs) == 0 {
		delete(h.subs, sub.SessionID)
	}
}

// Publish delivers an alert to the session's streams. Slow streams drop it.
func (h *Hub) Publish(sessionID uuid.UUID, kind model.AlertType, msg string) model.Alert {
	a := model.Alert{
		Type:           kind,
		Message:        msg,
		DismissAfterMS: h.dismissAfter.Milliseconds(),
		CreatedAt:      h.now(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[sessionID] {
		select {
		case sub.ch <- a:
		default:
			logger.Logger().Warn("alert dropped, subscriber is not reading",
				zap.String("session_id", sessionID.String()))
		}
	}

	return a
}

func (h *Hub) Subscribers(sessionID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[sessionID])
}

// CloseSession ends every stream of the session.
func (h *Hub) CloseSession(sessionID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[sessionID] {
		close(sub.ch)
	}
	delete(h.subs, sessionID)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, subs := range h.subs {
		for _, sub := range subs {
			close(sub.ch)
		}
		delete(h.subs, id)
	}
}
