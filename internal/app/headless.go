package app

import (
	"context"
	"errors"
	"io"

	"eridian-chronometer/internal/chrono"
	"eridian-chronometer/internal/config"
	"eridian-chronometer/internal/console"
	"eridian-chronometer/internal/logger"
	"eridian-chronometer/internal/shutdown"
)

// RunHeadless prints both clocks to w once per period until ctx is done or
// the process is signalled. Extra options are applied to the ticker.
func RunHeadless(ctx context.Context, cfg config.Config, log logger.Logger, w io.Writer, inline bool, opts ...chrono.Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	formatter, err := chrono.NewFormatter(cfg.Eridian.Width)
	if err != nil {
		return err
	}

	sm := shutdown.NewManager(log)
	sm.Listen()
	defer sm.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sm.Register("ticker", shutdown.Func(cancel))

	ticker := chrono.NewTicker(console.NewSink(w, inline), append([]chrono.Option{
		chrono.WithFormatter(formatter),
		chrono.WithPeriod(cfg.Clock.Period),
		chrono.WithLogger(log),
	}, opts...)...)

	log.Info("Application", "running headless", map[string]interface{}{
		"period":        cfg.Clock.Period.String(),
		"eridian_width": cfg.Eridian.Width,
	})

	err = ticker.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
