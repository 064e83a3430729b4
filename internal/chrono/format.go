package chrono

import (
	"errors"
	"fmt"
	"strings"

	"eridian-chronometer/internal/eridian"
)

var (
	ErrInvalidSample = errors.New("invalid time sample")
	ErrInvalidWidth  = errors.New("eridian group width must be 2 or 3")
)

// Reading is what a sink receives on every tick.
type Reading struct {
	Sample  TimeSample
	Earth   string
	Eridian string
}

// Formatter turns a sample into display strings. Width is the glyph count of
// each Eridian group: 2 keeps the natural width (values 36..59 still show
// three glyphs), 3 pads every group to a fixed three glyphs.
type Formatter struct {
	Width int
}

func NewFormatter(width int) (Formatter, error) {
	if width != 2 && width != 3 {
		return Formatter{}, fmt.Errorf("width %d: %w", width, ErrInvalidWidth)
	}
	return Formatter{Width: width}, nil
}

func (f Formatter) Format(s TimeSample) (Reading, error) {
	if err := s.Validate(); err != nil {
		return Reading{}, err
	}

	width := f.Width
	if width < eridian.MinWidth {
		width = eridian.MinWidth
	}

	groups := make([]string, 0, 3)
	for _, v := range []int{s.Hour, s.Minute, s.Second} {
		g, err := eridian.Encode(v, width)
		if err != nil {
			return Reading{}, err
		}
		groups = append(groups, g)
	}

	return Reading{
		Sample:  s,
		Earth:   s.String(),
		Eridian: strings.Join(groups, ":"),
	}, nil
}

// ParseEridian decodes an "hh:mm:ss" Eridian string back into a sample.
func ParseEridian(s string) (TimeSample, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return TimeSample{}, fmt.Errorf("%q: expected 3 groups: %w", s, ErrInvalidSample)
	}

	var values [3]int
	for i, p := range parts {
		v, err := eridian.Decode(p)
		if err != nil {
			return TimeSample{}, err
		}
		values[i] = v
	}

	sample := TimeSample{Hour: values[0], Minute: values[1], Second: values[2]}
	return sample, sample.Validate()
}
