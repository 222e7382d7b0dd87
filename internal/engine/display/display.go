// Package display tracks the output surface size and fans resize events out
// to the camera and render targets.
package display

import (
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/logger"
)

// MaxPixelRatio caps the device pixel ratio used for render targets.
const MaxPixelRatio = 2

// Viewport is the logical output size plus the pixel ratio applied to it.
type Viewport struct {
	Width      int
	Height     int
	PixelRatio float32
}

// NewViewport builds a viewport, clamping the device pixel ratio to
// [1, MaxPixelRatio]. A zero or negative ratio means "unknown" and maps to 1.
func NewViewport(width, height int, devicePixelRatio float32) Viewport {
	return NewViewportWithLimit(width, height, devicePixelRatio, MaxPixelRatio)
}

// NewViewportWithLimit is NewViewport with a custom ratio cap.
func NewViewportWithLimit(width, height int, devicePixelRatio, limit float32) Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	ratio := devicePixelRatio
	if !(ratio > 0) {
		ratio = 1
	}
	if limit >= 1 && ratio > limit {
		ratio = limit
	}
	return Viewport{Width: width, Height: height, PixelRatio: ratio}
}

// Aspect returns width / height.
func (v Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// FramebufferSize returns the physical pixel size of the render target.
func (v Viewport) FramebufferSize() (int, int) {
	w := int(float32(v.Width)*v.PixelRatio + 0.5)
	h := int(float32(v.Height)*v.PixelRatio + 0.5)
	return w, h
}

// Projector is anything with a perspective aspect ratio.
type Projector interface {
	SetAspect(aspect float32)
}

// Target is a render target that follows the viewport size.
type Target interface {
	Resize(v Viewport)
}

// Resizer applies viewport changes to a projector and its targets.
type Resizer struct {
	projector Projector
	targets   []Target
	limit     float32
	current   Viewport
}

// NewResizer creates a resizer. Targets can be added later with Attach.
func NewResizer(projector Projector, limit float32, targets ...Target) *Resizer {
	if limit <= 0 {
		limit = MaxPixelRatio
	}
	return &Resizer{
		projector: projector,
		targets:   targets,
		limit:     limit,
	}
}

// Attach adds a target and brings it to the current size.
func (r *Resizer) Attach(t Target) {
	r.targets = append(r.targets, t)
	if r.current.Width > 0 {
		t.Resize(r.current)
	}
}

// Current returns the last applied viewport.
func (r *Resizer) Current() Viewport {
	return r.current
}

// Handle reacts to a new window size. Returns false when nothing changed.
func (r *Resizer) Handle(width, height int, devicePixelRatio float32) bool {
	v := NewViewportWithLimit(width, height, devicePixelRatio, r.limit)
	if v == r.current {
		return false
	}
	r.current = v

	if r.projector != nil {
		r.projector.SetAspect(v.Aspect())
	}
	for _, t := range r.targets {
		t.Resize(v)
	}

	fbW, fbH := v.FramebufferSize()
	logger.Debug("viewport resized",
		zap.Int("width", v.Width),
		zap.Int("height", v.Height),
		zap.Float32("pixel_ratio", v.PixelRatio),
		zap.Int("fb_width", fbW),
		zap.Int("fb_height", fbH),
	)
	return true
}
