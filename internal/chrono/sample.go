// Package chrono samples the wall clock once per tick and renders each sample
// as an Earth (base-10) and an Eridian (base-6) time string.
package chrono

import (
	"fmt"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads local wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// TimeSample is one reading of the wall clock, split into components.
type TimeSample struct {
	Hour   int
	Minute int
	Second int
}

func SampleOf(t time.Time) TimeSample {
	return TimeSample{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

func (s TimeSample) Validate() error {
	switch {
	case s.Hour < 0 || s.Hour > 23:
		return fmt.Errorf("hour %d: %w", s.Hour, ErrInvalidSample)
	case s.Minute < 0 || s.Minute > 59:
		return fmt.Errorf("minute %d: %w", s.Minute, ErrInvalidSample)
	case s.Second < 0 || s.Second > 59:
		return fmt.Errorf("second %d: %w", s.Second, ErrInvalidSample)
	}
	return nil
}

// Seconds returns the offset of the sample from midnight.
func (s TimeSample) Seconds() int {
	return s.Hour*3600 + s.Minute*60 + s.Second
}

func (s TimeSample) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", s.Hour, s.Minute, s.Second)
}
