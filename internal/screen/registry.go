package screen

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	StatusTTL time.Duration `mapstructure:"statusTTL"`
}

type key struct {
	session uuid.UUID
	screen  string
}

// Registry owns the machines of every live session.
type Registry struct {
	statusTTL time.Duration
	describe  Describer

	mu       sync.Mutex
	machines map[key]*Machine
}

func NewRegistry(cfg Config, describe Describer) *Registry {
	return &Registry{
		statusTTL: cfg.StatusTTL,
		describe:  describe,
		machines:  make(map[key]*Machine),
	}
}

// Machine returns the machine for a session's screen, creating it on first use.
func (r *Registry) Machine(sessionID uuid.UUID, screen string) *Machine {
	k := key{session: sessionID, screen: screen}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.machines[k]
	if !ok {
		m = NewMachine(screen, r.statusTTL, r.describe)
		r.machines[k] = m
	}
	return m
}

func (r *Registry) CloseSession(sessionID uuid.UUID) {
	r.mu.Lock()
	var closing []*Machine
	for k, m := range r.machines {
		if k.session == sessionID {
			closing = append(closing, m)
			delete(r.machines, k)
		}
	}
	r.mu.Unlock()

	for _, m := range closing {
		m.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.machines)
}

func (r *Registry) Close() {
	r.mu.Lock()
	machines := r.machines
	r.machines = make(map[key]*Machine)
	r.mu.Unlock()

	for _, m := range machines {
		m.Close()
	}
}
