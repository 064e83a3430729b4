package app

import (
	"context"
	"sync"

	"eridian-chronometer/internal/gui"
	"eridian-chronometer/internal/logger"
)

// Lifecycle stops the ticker before the GUI goes away.
type Lifecycle struct {
	guiManager *gui.Manager
	logger     logger.Logger
	stopTicker context.CancelFunc
	mu         sync.Mutex
	isShutdown bool
}

func NewLifecycle(gm *gui.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: gm,
		logger:     log,
	}
}

func (l *Lifecycle) SetTickerCancel(cancel context.CancelFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopTicker = cancel
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.stopTicker != nil {
		l.stopTicker()
		l.logger.Debug("Lifecycle", "ticker stopped", nil)
	}

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}
