package app

import (
	"context"
	"errors"
	"fmt"

	"eridian-chronometer/internal/assets"
	"eridian-chronometer/internal/chrono"
	"eridian-chronometer/internal/config"
	"eridian-chronometer/internal/gui"
	"eridian-chronometer/internal/logger"
	"eridian-chronometer/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Eridian Chronometer"
	AppID      = "com.eridian.chronometer"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	guiManager *gui.Manager
	ticker     *chrono.Ticker
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	formatter, err := chrono.NewFormatter(cfg.Eridian.Width)
	if err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"eridian_width": cfg.Eridian.Width,
	})

	loader := assets.NewLoader(log)
	images := gui.Images{
		Background: loader.LoadBackground(cfg.Assets.Path(cfg.Assets.Background), int(cfg.Window.Width), int(cfg.Window.Height)),
		Earth:      loader.LoadPlanet(cfg.Assets.Path(cfg.Assets.Earth)),
		Eridian:    loader.LoadPlanet(cfg.Assets.Path(cfg.Assets.Eridian)),
	}

	guiManager := gui.NewManager(images, log)

	ticker := chrono.NewTicker(guiManager,
		chrono.WithFormatter(formatter),
		chrono.WithPeriod(cfg.Clock.Period),
		chrono.WithLogger(log),
	)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		guiManager: guiManager,
		ticker:     ticker,
		lifecycle:  NewLifecycle(guiManager, log),
		shutdown:   shutdown.NewManager(log),
	}

	// Signals close the window the same way the close button does.
	application.shutdown.Register("lifecycle", application.lifecycle)
	application.shutdown.Register("fyne", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks until it is closed.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())

	a.startTicker(a.shutdown.Context())
	a.shutdown.Listen()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}

// startTicker runs the ticker in the background. The returned channel is
// closed once Run has returned.
func (a *Application) startTicker(parent context.Context) <-chan struct{} {
	ctx, cancel := context.WithCancel(parent)
	a.lifecycle.SetTickerCancel(cancel)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if err := a.ticker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("Application", fmt.Errorf("ticker stopped: %w", err), nil)
		}
	}()
	return stopped
}
