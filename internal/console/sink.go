// Package console renders clock readings as text lines for headless use.
package console

import (
	"fmt"
	"io"
	"sync"

	"eridian-chronometer/internal/chrono"
)

// Sink writes one line per reading. In inline mode each line overwrites the
// previous one with a carriage return.
type Sink struct {
	mu     sync.Mutex
	w      io.Writer
	inline bool
	err    error
}

func NewSink(w io.Writer, inline bool) *Sink {
	return &Sink{w: w, inline: inline}
}

func (s *Sink) Update(r chrono.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix, suffix := "", "\n"
	if s.inline {
		prefix, suffix = "\r", ""
	}

	// A failed write is retried with the next reading.
	_, s.err = fmt.Fprintf(s.w, "%s%s%s", prefix, Line(r), suffix)
}

// Err returns the error from the most recent write, if any.
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func Line(r chrono.Reading) string {
	return fmt.Sprintf("Earth %s | Eridian %s", r.Earth, r.Eridian)
}
