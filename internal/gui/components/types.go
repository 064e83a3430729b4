package components

import "image/color"

const (
	// GlowSize is the edge of the square holding a planet and its glow.
	GlowSize = 300

	TitleTextSize   = 40
	TimeTextSize    = 40
	CaptionTextSize = 28
	HeadingTextSize = 24
)

// GlowColors are the centre colours of a planet's outer and inner halo.
type GlowColors struct {
	Outer color.Color
	Inner color.Color
}

var (
	EarthGlow = GlowColors{
		Outer: color.NRGBA{R: 0, G: 255, B: 255, A: 255},
		Inner: color.NRGBA{R: 0, G: 200, B: 255, A: 80},
	}
	EridianGlow = GlowColors{
		Outer: color.NRGBA{R: 200, G: 50, B: 255, A: 255},
		Inner: color.NRGBA{R: 150, G: 20, B: 200, A: 90},
	}

	TextColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	TitleColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
	HeadingColor = color.NRGBA{R: 220, G: 220, B: 255, A: 220}
	SpaceColor   = color.NRGBA{R: 8, G: 6, B: 24, A: 255}
	transparent  = color.NRGBA{}
)
