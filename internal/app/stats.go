package app

import (
	"runtime"
	"time"
)

// Stats tracks frame timing for the overlay.
type Stats struct {
	frames     uint64
	frameTime  time.Duration
	displace   time.Duration
	fps        float64
	window     time.Duration
	windowRuns int

	memStats   runtime.MemStats
	memElapsed time.Duration
}

// FPS is averaged over windows of this length.
const fpsWindow = 500 * time.Millisecond

const memInterval = 2 * time.Second

// NewStats creates an empty tracker.
func NewStats() *Stats {
	return &Stats{}
}

// Update records one frame.
func (s *Stats) Update(frameTime, displace time.Duration) {
	s.frames++
	s.frameTime = frameTime
	s.displace = displace

	s.window += frameTime
	s.windowRuns++
	if s.window >= fpsWindow {
		s.fps = float64(s.windowRuns) / s.window.Seconds()
		s.window = 0
		s.windowRuns = 0
	}

	s.memElapsed += frameTime
	if s.memElapsed >= memInterval {
		runtime.ReadMemStats(&s.memStats)
		s.memElapsed = 0
	}
}

// Frames returns the number of recorded frames.
func (s *Stats) Frames() uint64 { return s.frames }

// FPS returns the frame rate over the last full window.
func (s *Stats) FPS() float64 { return s.fps }

// FrameTime returns the duration of the last frame.
func (s *Stats) FrameTime() time.Duration { return s.frameTime }

// DisplaceTime returns how long the last displacement pass took.
func (s *Stats) DisplaceTime() time.Duration { return s.displace }

// HeapAlloc returns the heap size at the last memory sample.
func (s *Stats) HeapAlloc() uint64 { return s.memStats.HeapAlloc }
