package screen

import (
	"context"
	"errors"
	"sync"
	"time"

	"algonest_webclient/internal/model"
)

type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateSuccess    State = "success"
	StateError      State = "error"
	StateSubmitting State = "submitting"
)

var (
	ErrClosed         = errors.New("screen closed")
	ErrSuperseded     = errors.New("request superseded by a newer one")
	ErrBusy           = errors.New("submission already in progress")
	ErrNothingToRetry = errors.New("nothing to retry")

	errAborted = errors.New("request aborted unexpectedly")
)

const DefaultStatusTTL = 5 * time.Second

type FetchFunc func(ctx context.Context) (any, error)

// SubmitFunc performs a user action and returns the confirmation text.
type SubmitFunc func(ctx context.Context) (string, error)

// Describer turns an error into the message shown to the user and whether a
// retry affordance applies.
type Describer func(err error) (message string, retryable bool)

func defaultDescriber(err error) (string, bool) {
	return err.Error(), false
}

// Snapshot is the renderable view of a machine.
type Snapshot struct {
	State      State           `json:"state"`
	Data       any             `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Retryable  bool            `json:"retryable"`
	Status     string          `json:"status,omitempty"`
	StatusType model.AlertType `json:"status_type,omitempty"`
}

// Machine tracks one screen section through Idle, Loading, Success, Error and
// Submitting. At most one load is outstanding; starting a new one cancels the
// previous and its result is dropped.
type Machine struct {
	name      string
	statusTTL time.Duration
	describe  Describer

	life context.Context
	stop context.CancelFunc

	mu         sync.Mutex
	state      State
	data       any
	errMsg     string
	retryable  bool
	status     string
	statusType model.AlertType
	gen        uint64
	cancel     context.CancelFunc
	last       FetchFunc
	submitting bool
	timer      *time.Timer
	closed     bool
}

func NewMachine(name string, statusTTL time.Duration, describe Describer) *Machine {
	if statusTTL <= 0 {
		statusTTL = DefaultStatusTTL
	}
	if describe == nil {
		describe = defaultDescriber
	}

	life, stop := context.WithCancel(context.Background())
	return &Machine{
		name:      name,
		statusTTL: statusTTL,
		describe:  describe,
		life:      life,
		stop:      stop,
		state:     StateIdle,
	}
}

func (m *Machine) Name() string {
	return m.name
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() Snapshot {
	s := Snapshot{
		State:      m.state,
		Status:     m.status,
		StatusType: m.statusType,
	}
	switch m.state {
	case StateSuccess, StateSubmitting:
		s.Data = m.data
	case StateError:
		s.Error = m.errMsg
		s.Retryable = m.retryable
	}
	return s
}

// bind derives a context that ends with either ctx or the machine.
func (m *Machine) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stopAfter := context.AfterFunc(m.life, cancel)
	return ctx, func() {
		stopAfter()
		cancel()
	}
}

// Load runs fetch and moves the machine to Success or Error. The returned
// error is the fetch error, ErrSuperseded when a newer Load took over, or
// ErrClosed.
func (m *Machine) Load(ctx context.Context, fetch FetchFunc) (Snapshot, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return Snapshot{State: StateIdle}, ErrClosed
	}
	if m.cancel != nil {
		m.cancel()
	}

	m.gen++
	gen := m.gen
	fctx, cancel := m.bind(ctx)
	m.cancel = cancel
	m.last = fetch
	m.state = StateLoading
	m.errMsg = ""
	m.retryable = false
	m.mu.Unlock()

	finished := false
	defer func() {
		if !finished {
			m.abortLoad(gen, cancel)
		}
	}()

	data, err := fetch(fctx)
	finished = true

	m.mu.Lock()
	defer m.mu.Unlock()
	cancel()

	if m.closed {
		return Snapshot{State: StateIdle}, closedErr(err)
	}
	if gen != m.gen {
		return m.snapshotLocked(), ErrSuperseded
	}
	m.cancel = nil

	if err != nil {
		m.state = StateError
		m.data = nil
		m.errMsg, m.retryable = m.describe(err)
		return m.snapshotLocked(), err
	}

	m.state = StateSuccess
	m.data = data
	return m.snapshotLocked(), nil
}

// abortLoad leaves the machine in Error when fetch panicked.
func (m *Machine) abortLoad(gen uint64, cancel context.CancelFunc) {
	cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || gen != m.gen {
		return
	}
	m.cancel = nil
	m.state = StateError
	m.data = nil
	m.errMsg, m.retryable = m.describe(errAborted)
}

// abortSubmit releases the submission when fn panicked.
func (m *Machine) abortSubmit(prev State, cancel context.CancelFunc) {
	cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false
	if !m.closed && m.state == StateSubmitting {
		m.state = prev
	}
}

// closedErr keeps the cause visible when work ends because the machine was
// torn down mid-flight, as happens when the backend rejects the session.
func closedErr(err error) error {
	if err == nil {
		return ErrClosed
	}
	return errors.Join(ErrClosed, err)
}

// Retry repeats the last Load.
func (m *Machine) Retry(ctx context.Context) (Snapshot, error) {
	m.mu.Lock()
	fetch := m.last
	m.mu.Unlock()

	if fetch == nil {
		return m.Snapshot(), ErrNothingToRetry
	}
	return m.Load(ctx, fetch)
}

// Submit runs fn while in Submitting. A second Submit while one is in flight
// fails with ErrBusy. The outcome is published as a transient status message.
func (m *Machine) Submit(ctx context.Context, fn SubmitFunc) (Snapshot, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return Snapshot{State: StateIdle}, ErrClosed
	}
	if m.submitting {
		s := m.snapshotLocked()
		m.mu.Unlock()
		return s, ErrBusy
	}

	prev := m.state
	if prev == StateSubmitting || prev == StateLoading {
		prev = StateIdle
		if m.data != nil {
			prev = StateSuccess
		}
	}
	m.submitting = true
	m.state = StateSubmitting
	sctx, cancel := m.bind(ctx)
	m.mu.Unlock()

	finished := false
	defer func() {
		if !finished {
			m.abortSubmit(prev, cancel)
		}
	}()

	msg, err := fn(sctx)
	finished = true
	cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false

	if m.closed {
		return Snapshot{State: StateIdle}, closedErr(err)
	}
	if m.state == StateSubmitting {
		m.state = prev
	}

	if err != nil {
		text, _ := m.describe(err)
		m.setStatusLocked(model.AlertError, text)
		return m.snapshotLocked(), err
	}

	if msg != "" {
		m.setStatusLocked(model.AlertSuccess, msg)
	}
	return m.snapshotLocked(), nil
}

// SetStatus publishes a transient message that clears after the status TTL.
func (m *Machine) SetStatus(kind model.AlertType, msg string) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.setStatusLocked(kind, msg)
	}
	return m.snapshotLocked()
}

func (m *Machine) setStatusLocked(kind model.AlertType, msg string) {
	if m.timer != nil {
		m.timer.Stop()
	}

	m.status = msg
	m.statusType = kind

	var t *time.Timer
	t = time.AfterFunc(m.statusTTL, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.timer == t {
			m.status = ""
			m.statusType = ""
			m.timer = nil
		}
	})
	m.timer = t
}

func (m *Machine) StatusTTL() time.Duration {
	return m.statusTTL
}

// Close cancels any in-flight work and stops the machine. It is safe to call
// more than once.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}

	m.closed = true
	m.stop()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.state = StateIdle
	m.data = nil
	m.status = ""
	m.statusType = ""
}
