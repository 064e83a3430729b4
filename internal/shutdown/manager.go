// Package shutdown stops registered components exactly once, newest first,
// either on request or when the process receives a termination signal.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"eridian-chronometer/internal/logger"
)

const DefaultTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() {
	f()
}

type component struct {
	name string
	impl Shutdownable
}

type Manager struct {
	logger  logger.Logger
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	mu         sync.Mutex
	components []component
	timedOut   []string
}

type Option func(*Manager)

// WithTimeout bounds how long a single component may take to stop.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

func NewManager(log logger.Logger, opts ...Option) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		logger:  log,
		timeout: DefaultTimeout,
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds a component. Components stop in reverse registration order.
func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component{name: name, impl: c})
}

// Listen triggers Shutdown on the first of signals, SIGINT and SIGTERM by
// default. The watch ends when the manager shuts down for any other reason.
func (m *Manager) Listen(signals ...os.Signal) {
	if len(signals) == 0 {
		signals = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}

	sigCtx, stop := signal.NotifyContext(m.ctx, signals...)
	go func() {
		defer stop()
		<-sigCtx.Done()

		if m.ctx.Err() != nil {
			return
		}
		m.logger.Info("ShutdownManager", "termination signal received", nil)
		m.Shutdown()
	}()
}

// Shutdown cancels Context and stops every component. Later calls are no-ops.
func (m *Manager) Shutdown() {
	m.once.Do(m.run)
}

func (m *Manager) run() {
	m.cancel()

	m.mu.Lock()
	pending := make([]component, len(m.components))
	copy(pending, m.components)
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "stopping components", map[string]interface{}{
		"components": len(pending),
	})

	var timedOut []string
	for i := len(pending) - 1; i >= 0; i-- {
		if !m.stop(pending[i]) {
			timedOut = append(timedOut, pending[i].name)
		}
	}

	m.mu.Lock()
	m.timedOut = timedOut
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "all components stopped", map[string]interface{}{
		"timed_out": len(timedOut),
	})
}

// stop reports whether c finished within the timeout. A component that
// overruns keeps running in the background.
func (m *Manager) stop(c component) bool {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		c.impl.Shutdown()
	}()

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case <-finished:
		m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{"component": c.name})
		return true
	case <-timer.C:
		m.logger.Warning("ShutdownManager", "component did not stop in time", map[string]interface{}{
			"component": c.name,
			"timeout":   m.timeout.String(),
		})
		return false
	}
}

// TimedOut names the components that overran the timeout during Shutdown.
func (m *Manager) TimedOut() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.timedOut...)
}

// Context is cancelled as soon as shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.ctx.Done()
}
