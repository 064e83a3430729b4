package gui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"eridian-chronometer/internal/assets"
	"eridian-chronometer/internal/chrono"
	"eridian-chronometer/internal/config"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := a.NewWindow(Title)
	placeholder := assets.Placeholder(assets.PlanetSize, assets.PlaceholderColor)
	m := NewManager(Images{Earth: placeholder, Eridian: placeholder}, nil)
	w.SetContent(m.GetMainContainer())
	return m
}

func TestManagerInitialText(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, InitialEarthText, m.EarthText())
	assert.Equal(t, InitialEridianText, m.EridianText())
	assert.True(t, strings.Contains(m.DescriptionText(), "ℓ=0, I=1, V=2, λ=3, +=4, ∀=5."))
}

func TestManagerApplyReading(t *testing.T) {
	m := newTestManager(t)

	r, err := chrono.Formatter{Width: 2}.Format(chrono.TimeSample{Hour: 7, Minute: 5, Second: 9})
	require.NoError(t, err)

	m.apply(r)
	assert.Equal(t, "07:05:09", m.EarthText())
	assert.Equal(t, "II:ℓ∀:Iλ", m.EridianText())
}

func TestManagerAsTickerSink(t *testing.T) {
	m := newTestManager(t)

	clock := chrono.ClockFunc(func() time.Time {
		return time.Date(2026, 10, 19, 23, 59, 35, 0, time.Local)
	})
	_, err := chrono.NewTicker(m, chrono.WithClock(clock)).Tick()
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return m.EridianText() == "λ∀:Iλ∀:∀∀"
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "23:59:35", m.EarthText())
}

func TestManagerIgnoresUpdatesAfterShutdown(t *testing.T) {
	m := newTestManager(t)
	m.Shutdown()
	m.Shutdown()

	m.Update(chrono.Reading{Earth: "01:01:01", Eridian: "ℓI:ℓI:ℓI"})
	assert.Equal(t, InitialEarthText, m.EarthText())
}

func TestManagerWithoutImages(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	m := NewManager(Images{}, nil)
	assert.NotNil(t, m.GetMainContainer())
}

func TestManagerContentFitsDefaultWindow(t *testing.T) {
	m := newTestManager(t)

	// 850 px of clocks beside a 350 px description, as in a 1200 px window
	assert.Equal(t, float32(ClocksColumnWidth+DescriptionColumnWidth), m.GetMainContainer().MinSize().Width)
	assert.LessOrEqual(t, m.GetMainContainer().MinSize().Width, float32(config.Default().Window.Width))
}

func TestManagerConcurrentUpdateAndShutdown(t *testing.T) {
	m := newTestManager(t)
	reading := chrono.Reading{Earth: "12:00:00", Eridian: "Iℓℓ:ℓℓ:ℓℓ"}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			m.Update(reading)
		}
	}()
	go func() {
		defer wg.Done()
		m.Shutdown()
	}()
	wg.Wait()

	m.Update(chrono.Reading{Earth: "13:00:00"})
	assert.NotEqual(t, "13:00:00", m.EarthText())
}
