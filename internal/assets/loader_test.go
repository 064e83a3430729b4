package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (r *recordingLogger) Info(string, string, map[string]interface{}) {}
func (r *recordingLogger) Error(string, error, map[string]interface{}) {}
func (r *recordingLogger) Debug(string, string, map[string]interface{}) {}
func (r *recordingLogger) Warning(_ string, message string, _ map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, message)
}

func writePNG(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "planet.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestLoadPlanetClipsToCircle(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	log := &recordingLogger{}
	img := NewLoader(log).LoadPlanet(writePNG(t, 100, 100, red))

	assert.Equal(t, image.Rect(0, 0, PlanetSize, PlanetSize), img.Bounds())

	r, g, b, a := img.At(PlanetSize/2, PlanetSize/2).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Less(t, g, uint32(0x1000))
	assert.Less(t, b, uint32(0x1000))
	assert.Greater(t, a, uint32(0xf000))

	assert.Zero(t, alphaAt(img, 0, 0), "corner outside the circle")
	assert.Zero(t, alphaAt(img, PlanetSize-1, PlanetSize-1))
	assert.Empty(t, log.warnings)
}

func TestLoadPlanetKeepsAspectRatio(t *testing.T) {
	// 200x50 fitted into 216 wide leaves the top and bottom empty
	img := NewLoader(nil).LoadPlanet(writePNG(t, 200, 50, color.RGBA{B: 255, A: 255}))

	assert.NotZero(t, alphaAt(img, PlanetSize/2, PlanetSize/2))
	assert.Zero(t, alphaAt(img, PlanetSize/2, PlanetSize/2-40))
	assert.Zero(t, alphaAt(img, PlanetSize/2, PlanetSize/2+40))
}

func TestLoadPlanetFallsBackToPlaceholder(t *testing.T) {
	corrupt := filepath.Join(t.TempDir(), "erid.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not an image"), 0o600))

	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.png"), corrupt} {
		log := &recordingLogger{}
		img := NewLoader(log).LoadPlanet(path)

		assert.Equal(t, Placeholder(PlanetSize, PlaceholderColor), img, "path %q", path)
		assert.Len(t, log.warnings, 1)
	}
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(PlanetSize, PlaceholderColor)

	r, g, b, a := img.At(PlanetSize/2, PlanetSize/2).RGBA()
	assert.Equal(t, []uint32{0x8080, 0x8080, 0x8080, 0xffff}, []uint32{r, g, b, a})

	// inside the inset band but within the outer circle
	assert.Zero(t, alphaAt(img, PlanetSize/2, 3))
	assert.NotZero(t, alphaAt(img, PlanetSize/2, placeholderInset+2))
}

func TestLoadBackground(t *testing.T) {
	log := &recordingLogger{}
	loader := NewLoader(log)

	img := loader.LoadBackground(writePNG(t, 30, 20, color.RGBA{G: 255, A: 255}), 120, 60)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 120, 60), img.Bounds())

	assert.Nil(t, loader.LoadBackground(filepath.Join(t.TempDir(), "nebula.jpg"), 120, 60))
	assert.Len(t, log.warnings, 1)
}
