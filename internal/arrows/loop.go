// Package arrows drives the decorative arrow animation. It is a purely
// visual side channel and never reads or writes verse data.
package arrows

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Arrow is one decorative flight. Positions are percentages of the
// viewport; the client animates it for DurationMS and forgets it.
type Arrow struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Angle      float64   `json:"angle"`
	DurationMS int       `json:"duration_ms"`
	At         time.Time `json:"at"`
}

// Sink receives each emitted arrow.
type Sink interface {
	BroadcastJSON(v any)
}

// Loop emits an arrow every Interval until stopped. Stopping is
// cooperative: the flag is checked at each tick boundary and arrows
// already emitted finish on their own.
type Loop struct {
	Interval time.Duration
	Sink     Sink

	stopped atomic.Bool
	emitted atomic.Int64
	rnd     func() float64
}

func NewLoop(interval time.Duration, sink Sink) *Loop {
	return &Loop{Interval: interval, Sink: sink, rnd: rand.Float64}
}

// Stop asks the loop to exit at its next tick.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}

// Emitted is the number of arrows sent so far.
func (l *Loop) Emitted() int64 {
	return l.emitted.Load()
}

// Run blocks until Stop is called or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if l.stopped.Load() {
				return nil
			}
			l.Sink.BroadcastJSON(l.next())
			l.emitted.Add(1)
		}
	}
}

func (l *Loop) next() Arrow {
	r := l.rnd
	if r == nil {
		r = rand.Float64
	}
	return Arrow{
		Type:       "arrow",
		ID:         uuid.NewString(),
		X:          r() * 100,
		Y:          r() * 100,
		Angle:      -30 + r()*60,
		DurationMS: 1200 + int(r()*1800),
		At:         time.Now().UTC(),
	}
}
