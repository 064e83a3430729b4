package console

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"eridian-chronometer/internal/chrono"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestSinkLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf, false)

	clock := chrono.ClockFunc(func() time.Time {
		return time.Date(2026, 10, 19, 0, 0, 0, 0, time.Local)
	})
	ticker := chrono.NewTicker(sink, chrono.WithClock(clock))

	_, err := ticker.Tick()
	require.NoError(t, err)
	assert.Equal(t, "Earth 00:00:00 | Eridian ℓℓ:ℓℓ:ℓℓ\n", buf.String())
	assert.NoError(t, sink.Err())
}

func TestSinkInline(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf, true)

	sink.Update(chrono.Reading{Earth: "07:05:09", Eridian: "II:ℓ∀:Iλ"})
	sink.Update(chrono.Reading{Earth: "07:05:10", Eridian: "II:ℓ∀:I+"})

	assert.Equal(t, "\rEarth 07:05:09 | Eridian II:ℓ∀:Iλ\rEarth 07:05:10 | Eridian II:ℓ∀:I+", buf.String())
}

func TestSinkWriteFailureIsNotFatal(t *testing.T) {
	sink := NewSink(failingWriter{}, false)
	assert.NotPanics(t, func() { sink.Update(chrono.Reading{}) })
	assert.Error(t, sink.Err())
}
