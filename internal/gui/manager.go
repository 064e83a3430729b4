package gui

import (
	"image"
	"sync/atomic"

	"eridian-chronometer/internal/chrono"
	"eridian-chronometer/internal/gui/components"
	"eridian-chronometer/internal/gui/layout"
	"eridian-chronometer/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

const (
	Title = "Eridian Chronometer"

	ClocksColumnWidth      = 850
	DescriptionColumnWidth = 350
	ColumnPadding          = 60

	InitialEarthText   = "00:00:00"
	InitialEridianText = "ℓℓ:ℓℓ:ℓℓ"
)

// Images holds the decoded artwork. Any of them may be nil.
type Images struct {
	Background image.Image
	Earth      image.Image
	Eridian    image.Image
}

// Manager owns the widget tree and is the display sink for the ticker.
type Manager struct {
	logger     logger.Logger
	isShutdown atomic.Bool

	earthPanel   *components.PlanetPanel
	eridianPanel *components.PlanetPanel
	description  *components.DescriptionPanel
	background   fyne.CanvasObject
	content      fyne.CanvasObject
}

func NewManager(images Images, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	manager := &Manager{
		logger:       log,
		earthPanel:   components.NewPlanetPanel("Earth 🌍:", InitialEarthText, images.Earth, components.EarthGlow, 240),
		eridianPanel: components.NewPlanetPanel("Eridian 🌌:", InitialEridianText, images.Eridian, components.EridianGlow, 240),
		description:  components.NewDescriptionPanel(),
		background:   components.NewBackground(images.Background),
	}
	manager.content = manager.buildContent()

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"background": images.Background != nil,
		"earth":      images.Earth != nil,
		"eridian":    images.Eridian != nil,
	})

	return manager
}

func (m *Manager) buildContent() fyne.CanvasObject {
	columns := []float32{ClocksColumnWidth, DescriptionColumnWidth}

	header := container.New(
		layout.NewFixedColumnLayout(columns, ColumnPadding),
		components.NewHeader(Title),
	)

	clocks := container.NewGridWithColumns(2,
		m.earthPanel.GetContainer(),
		m.eridianPanel.GetContainer(),
	)

	body := container.New(
		layout.NewFixedColumnLayout(columns, ColumnPadding),
		clocks,
		container.NewPadded(m.description.GetContainer()),
	)

	return container.NewStack(
		m.background,
		container.NewBorder(header, nil, nil, nil, body),
	)
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	return m.content
}

// Update implements chrono.Sink. The widgets are changed on the UI thread.
func (m *Manager) Update(r chrono.Reading) {
	if m.isShutdown.Load() {
		return
	}
	fyne.Do(func() {
		m.apply(r)
	})
}

func (m *Manager) apply(r chrono.Reading) {
	m.earthPanel.SetTime(r.Earth)
	m.eridianPanel.SetTime(r.Eridian)
}

func (m *Manager) EarthText() string {
	return m.earthPanel.TimeText()
}

func (m *Manager) EridianText() string {
	return m.eridianPanel.TimeText()
}

func (m *Manager) DescriptionText() string {
	return m.description.Text()
}

func (m *Manager) Shutdown() {
	if !m.isShutdown.CompareAndSwap(false, true) {
		return
	}

	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
