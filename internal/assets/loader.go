// Package assets loads the decorative planet and background images. Loading
// is best effort: failures are logged and replaced, never returned.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"eridian-chronometer/internal/logger"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// PlanetSize is the edge of the square a planet image is fitted into.
	PlanetSize = 240

	planetFill       = 0.9
	placeholderInset = 8
)

var PlaceholderColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Loader{logger: log}
}

// LoadPlanet returns the image at path fitted into a PlanetSize circle, or a
// grey placeholder circle if it cannot be read.
func (l *Loader) LoadPlanet(path string) image.Image {
	img, err := l.decode(path)
	if err != nil {
		l.logger.Warning("AssetLoader", "planet image unavailable, using placeholder", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return Placeholder(PlanetSize, PlaceholderColor)
	}
	return Circle(img, PlanetSize)
}

// LoadBackground returns the image at path stretched to width x height, or
// nil if it cannot be read.
func (l *Loader) LoadBackground(path string, width, height int) image.Image {
	img, err := l.decode(path)
	if err != nil {
		l.logger.Warning("AssetLoader", "background image unavailable", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil
	}
	return Scale(img, width, height)
}

func (l *Loader) decode(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("no path configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}

	l.logger.Debug("AssetLoader", "image loaded", map[string]interface{}{
		"path":      path,
		"format":    format,
		"extension": strings.ToLower(filepath.Ext(path)),
		"width":     bounds.Dx(),
		"height":    bounds.Dy(),
	})
	return img, nil
}

// Scale stretches img to exactly width x height.
func Scale(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Circle fits img into 90% of a size x size square, keeping its aspect ratio,
// centres it and clips the result to the inscribed circle.
func Circle(img image.Image, size int) image.Image {
	src := img.Bounds()
	scale := min(float64(size)*planetFill/float64(src.Dx()), float64(size)*planetFill/float64(src.Dy()))
	w := int(float64(src.Dx()) * scale)
	h := int(float64(src.Dy()) * scale)
	x := (size - w) / 2
	y := (size - h) / 2

	fitted := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(fitted, image.Rect(x, y, x+w, y+h), img, src, draw.Over, nil)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	mask := disc{cx: float64(size) / 2, cy: float64(size) / 2, r: float64(size) / 2, bounds: dst.Bounds()}
	draw.DrawMask(dst, dst.Bounds(), fitted, image.Point{}, mask, image.Point{}, draw.Over)
	return dst
}

// Placeholder is a filled circle of c inset from the edges of a size square.
func Placeholder(size int, c color.Color) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	mask := disc{
		cx:     float64(size) / 2,
		cy:     float64(size) / 2,
		r:      float64(size)/2 - placeholderInset,
		bounds: dst.Bounds(),
	}
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
	return dst
}

// disc is an alpha mask that is opaque inside a circle.
type disc struct {
	cx, cy, r float64
	bounds    image.Rectangle
}

func (d disc) ColorModel() color.Model { return color.AlphaModel }

func (d disc) Bounds() image.Rectangle { return d.bounds }

func (d disc) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - d.cx
	dy := float64(y) + 0.5 - d.cy
	if dx*dx+dy*dy <= d.r*d.r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}
