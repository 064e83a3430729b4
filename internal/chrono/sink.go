package chrono

// Sink receives a reading on every tick. Implementations must not block for
// long; the next tick waits for Update to return.
type Sink interface {
	Update(r Reading)
}

type SinkFunc func(r Reading)

func (f SinkFunc) Update(r Reading) {
	f(r)
}

// MultiSink fans a reading out to every sink in order.
type MultiSink []Sink

func (m MultiSink) Update(r Reading) {
	for _, s := range m {
		s.Update(r)
	}
}
