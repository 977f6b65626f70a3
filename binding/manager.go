package binding

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MocaRafee/android-packages-services-Telecomm/directory"
	"github.com/MocaRafee/android-packages-services-Telecomm/logging"
	"github.com/MocaRafee/android-packages-services-Telecomm/monitoring"
	"github.com/MocaRafee/android-packages-services-Telecomm/types"
)

// Session is one outstanding bind: the connection's resolved component and
// endpoint, from Bind until Unbind.
type Session struct {
	ID        string
	Component types.ComponentName
	Endpoint  types.Endpoint
	BoundAt   time.Time
}

// Manager tracks live binding sessions keyed by the caller's connection and
// drives the connect/disconnect notification protocol. It reads the
// directory, never mutates it.
//
// Like the rest of the harness, the manager takes no locks; concurrent use
// from multiple goroutines is outside the contract.
type Manager struct {
	dir      *directory.Directory
	sessions map[types.Connection]*Session
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewManager creates a session manager reading from dir. logger and metrics
// may be nil-ish only by passing the no-op variants; the facade always
// supplies both.
func NewManager(dir *directory.Directory, logger *logging.Logger, metrics *monitoring.Metrics) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		dir:      dir,
		sessions: make(map[types.Connection]*Session),
		logger:   logger,
		metrics:  metrics,
	}
}

// Bind opens a session for conn against target and synchronously invokes
// conn.OnServiceConnected before returning. Fails with
// *DuplicateBindingError if conn already has a session and with
// *UnknownServiceError if target was never registered; on failure no table
// is mutated and no callback fires.
//
// flags is accepted for signature compatibility and ignored. Binding is
// immediate: no asynchronous connection delay is modeled, which keeps
// callback ordering deterministic for tests.
func (m *Manager) Bind(conn types.Connection, target types.ComponentName, flags int) error {
	_ = flags

	if existing, ok := m.sessions[conn]; ok {
		m.countBindError("duplicate")
		return &DuplicateBindingError{Bound: existing.Component.String()}
	}

	endpoint, ok := m.dir.Endpoint(target)
	if !ok {
		m.countBindError("unknown_service")
		return &UnknownServiceError{Component: target.String()}
	}

	session := &Session{
		ID:        uuid.New().String(),
		Component: target,
		Endpoint:  endpoint,
		BoundAt:   time.Now(),
	}
	m.sessions[conn] = session

	if m.metrics != nil {
		m.metrics.BindsTotal.Inc()
		m.metrics.SessionsActive.Inc()
	}
	m.logger.Debug("service bound",
		zap.String("session_id", session.ID),
		zap.String("component", target.String()),
	)

	// Connect happens-before Bind returns.
	conn.OnServiceConnected(target, endpoint)
	return nil
}

// Unbind closes conn's session and synchronously invokes
// conn.OnServiceDisconnected with the bound identity before returning.
// Fails with *NoSuchBindingError if conn has no session.
//
// The identity passed to the disconnect callback is recovered through the
// directory's endpoint reverse index, mirroring a caller that only kept the
// connection handle.
func (m *Manager) Unbind(conn types.Connection) error {
	session, ok := m.sessions[conn]
	if !ok {
		m.countUnbindError("no_session")
		return &NoSuchBindingError{}
	}
	delete(m.sessions, conn)

	name, _ := m.dir.ComponentFor(session.Endpoint)

	if m.metrics != nil {
		m.metrics.UnbindsTotal.Inc()
		m.metrics.SessionsActive.Dec()
	}
	m.logger.Debug("service unbound",
		zap.String("session_id", session.ID),
		zap.String("component", name.String()),
	)

	// Disconnect happens-before Unbind returns; the session is already gone.
	conn.OnServiceDisconnected(name)
	return nil
}

// Session returns conn's live session, if any.
func (m *Manager) Session(conn types.Connection) (*Session, bool) {
	s, ok := m.sessions[conn]
	return s, ok
}

// SessionCount returns the number of live sessions.
func (m *Manager) SessionCount() int {
	return len(m.sessions)
}

func (m *Manager) countBindError(reason string) {
	if m.metrics != nil {
		m.metrics.BindErrors.WithLabelValues(reason).Inc()
	}
}

func (m *Manager) countUnbindError(reason string) {
	if m.metrics != nil {
		m.metrics.UnbindErrors.WithLabelValues(reason).Inc()
	}
}
