package ocean

import "time"

// Clock returns the current time. time.Now in production.
type Clock func() time.Time

// Frame is the render command for one display refresh.
type Frame struct {
	Number uint64
	Params Params  // snapshot read at the start of the frame
	Delta  float32 // seconds since the previous frame
}

// Update derives the next frame from a fresh snapshot and the previous frame.
// It is pure: the loop owns all state, Update only computes.
func Update(snapshot Params, prev Frame) Frame {
	delta := snapshot.ElapsedTime - prev.Params.ElapsedTime
	if prev.Number == 0 || delta < 0 {
		delta = 0
	}
	return Frame{
		Number: prev.Number + 1,
		Params: snapshot,
		Delta:  delta,
	}
}

// Loop advances elapsed time and turns the store into frames.
// It is driven by the host's refresh callback and is not safe for
// concurrent Tick calls.
type Loop struct {
	store *Store
	clock Clock
	start time.Time
	last  Frame

	// OnRejected is called for each command Apply rejected.
	OnRejected func(error)
}

// NewLoop starts the clock now.
func NewLoop(store *Store, clock Clock) *Loop {
	if clock == nil {
		clock = time.Now
	}
	return &Loop{
		store: store,
		clock: clock,
		start: clock(),
	}
}

// Tick applies queued commands, publishes elapsedTime and returns the frame
// to render.
func (l *Loop) Tick() Frame {
	for _, err := range l.store.Apply() {
		if l.OnRejected != nil {
			l.OnRejected(err)
		}
	}

	elapsed := float32(l.clock().Sub(l.start).Seconds())
	if elapsed < l.last.Params.ElapsedTime {
		elapsed = l.last.Params.ElapsedTime
	}
	l.store.setElapsed(elapsed)

	l.last = Update(l.store.Snapshot(), l.last)
	return l.last
}

// Last returns the most recent frame.
func (l *Loop) Last() Frame {
	return l.last
}
