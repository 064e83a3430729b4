// Package eridian converts between base-10 integers and base-6 numerals
// written in the Eridian glyph alphabet.
package eridian

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Base is the radix of Eridian numerals.
	Base = 6

	// MinWidth is the number of glyphs Convert pads to.
	MinWidth = 2

	// MaxClockValue is the largest wall-clock component (minute or second).
	MaxClockValue = 59
)

// Alphabet maps a base-6 digit to its display glyph. It is an array, so every
// caller gets a copy.
type Alphabet [Base]rune

var symbols = Alphabet{'ℓ', 'I', 'V', 'λ', '+', '∀'}

// Symbols returns the Eridian glyph table: ℓ=0, I=1, V=2, λ=3, +=4, ∀=5.
func Symbols() Alphabet {
	return symbols
}

// Zero is the glyph used for left padding.
const Zero = 'ℓ'

// Glyph returns the glyph for digit d.
func Glyph(d int) (rune, error) {
	if d < 0 || d >= Base {
		return 0, &OpError{Op: "glyph", Input: strconv.Itoa(d), Err: ErrOutOfRange}
	}
	return symbols[d], nil
}

// Digit returns the digit value of glyph r.
func Digit(r rune) (int, error) {
	for d, g := range symbols {
		if g == r {
			return d, nil
		}
	}
	return 0, &OpError{Op: "digit", Input: string(r), Err: ErrUnknownGlyph}
}

// Convert renders a clock component n in [0,59] as an Eridian numeral of at
// least MinWidth glyphs.
//
// Values 36..59 need three base-6 digits and come back three glyphs wide;
// use Encode with width 3 where a fixed-width field is wanted.
func Convert(n int) (string, error) {
	if n < 0 || n > MaxClockValue {
		return "", &OpError{Op: "convert", Input: strconv.Itoa(n), Err: ErrOutOfRange}
	}
	return Encode(n, MinWidth)
}

// MustConvert is like Convert but panics if n is outside [0,59].
func MustConvert(n int) string {
	s, err := Convert(n)
	if err != nil {
		panic(err)
	}
	return s
}

// Encode renders any non-negative n in base 6, left-padded with Zero to
// width glyphs. Numerals wider than width are never truncated.
func Encode(n, width int) (string, error) {
	if n < 0 {
		return "", &OpError{Op: "encode", Input: strconv.Itoa(n), Err: ErrOutOfRange}
	}

	var digits []rune
	for {
		digits = append(digits, symbols[n%Base])
		n /= Base
		if n == 0 {
			break
		}
	}
	for len(digits) < width {
		digits = append(digits, Zero)
	}

	// digits were collected least significant first
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// Decode parses an Eridian numeral back to its integer value.
func Decode(s string) (int, error) {
	if s == "" {
		return 0, &OpError{Op: "decode", Input: s, Err: ErrEmpty}
	}

	n := 0
	for _, r := range s {
		d, err := Digit(r)
		if err != nil {
			return 0, &OpError{Op: "decode", Input: s, Err: ErrUnknownGlyph}
		}
		n = n*Base + d
	}
	return n, nil
}

// Legend describes the alphabet as "ℓ=0, I=1, ...".
func Legend() string {
	parts := make([]string, 0, Base)
	for d, g := range symbols {
		parts = append(parts, fmt.Sprintf("%c=%d", g, d))
	}
	return strings.Join(parts, ", ")
}
