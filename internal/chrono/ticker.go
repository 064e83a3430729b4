package chrono

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eridian-chronometer/internal/logger"
)

const DefaultPeriod = time.Second

// TickSource starts a periodic timer and returns its channel and a stop func.
type TickSource func(period time.Duration) (<-chan time.Time, func())

func systemTicks(period time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(period)
	return t.C, t.Stop
}

// Stats summarises the ticks performed so far.
type Stats struct {
	Ticks        int64
	Failures     int64
	Last         Reading
	LastAt       time.Time
	MeanDuration time.Duration
}

// Ticker drives the sample-convert-render cycle. Ticks are serialised: a tick
// never starts before the previous one has returned.
type Ticker struct {
	clock     Clock
	formatter Formatter
	sink      Sink
	period    time.Duration
	source    TickSource
	logger    logger.Logger

	mu      sync.Mutex
	stats   Stats
	elapsed time.Duration
}

type Option func(*Ticker)

func WithClock(c Clock) Option {
	return func(t *Ticker) { t.clock = c }
}

func WithPeriod(d time.Duration) Option {
	return func(t *Ticker) { t.period = d }
}

func WithFormatter(f Formatter) Option {
	return func(t *Ticker) { t.formatter = f }
}

func WithTickSource(src TickSource) Option {
	return func(t *Ticker) { t.source = src }
}

func WithLogger(l logger.Logger) Option {
	return func(t *Ticker) { t.logger = l }
}

func NewTicker(sink Sink, opts ...Option) *Ticker {
	t := &Ticker{
		clock:     SystemClock{},
		formatter: Formatter{Width: 2},
		sink:      sink,
		period:    DefaultPeriod,
		source:    systemTicks,
		logger:    logger.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.period <= 0 {
		t.period = DefaultPeriod
	}
	return t
}

// Run ticks once immediately and then once per period until ctx is done.
func (t *Ticker) Run(ctx context.Context) error {
	ticks, stop := t.source(t.period)
	defer stop()

	t.logger.Info("Ticker", "started", map[string]interface{}{
		"period": t.period.String(),
		"width":  t.formatter.Width,
	})

	t.Tick()

	for {
		select {
		case <-ctx.Done():
			stats := t.Stats()
			t.logger.Info("Ticker", "stopped", map[string]interface{}{
				"ticks":    stats.Ticks,
				"failures": stats.Failures,
			})
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			t.Tick()
		}
	}
}

// Tick performs one cycle and returns the reading handed to the sink.
func (t *Ticker) Tick() (Reading, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start := time.Now()
	now := t.clock.Now()

	reading, err := t.formatter.Format(SampleOf(now))
	if err != nil {
		t.stats.Failures++
		t.logger.Error("Ticker", err, map[string]interface{}{"time": now})
		return Reading{}, err
	}

	if err := t.deliver(reading); err != nil {
		t.stats.Failures++
		t.logger.Warning("Ticker", "sink update failed", map[string]interface{}{
			"error": err.Error(),
			"earth": reading.Earth,
		})
		return reading, err
	}

	t.elapsed += time.Since(start)
	t.stats.Ticks++
	t.stats.Last = reading
	t.stats.LastAt = now
	t.stats.MeanDuration = t.elapsed / time.Duration(t.stats.Ticks)

	t.logger.Debug("Ticker", "tick", map[string]interface{}{
		"earth":   reading.Earth,
		"eridian": reading.Eridian,
	})
	return reading, nil
}

func (t *Ticker) deliver(r Reading) (err error) {
	if t.sink == nil {
		return nil
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("sink panic: %v", p)
		}
	}()
	t.sink.Update(r)
	return nil
}

func (t *Ticker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

func (t *Ticker) Period() time.Duration {
	return t.period
}
