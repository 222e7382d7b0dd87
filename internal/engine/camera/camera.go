// Package camera provides the perspective camera and its orbit controls.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective holds projection settings.
type Perspective struct {
	FOV    float32 // Vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// SetAspect updates the aspect ratio. Non-positive values are ignored.
func (p *Perspective) SetAspect(aspect float32) {
	if aspect > 0 {
		p.Aspect = aspect
	}
}

// Projection returns the projection matrix.
func (p *Perspective) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.Aspect, p.Near, p.Far)
}

// OrbitCamera orbits around a target point.
// Input accumulates into pending deltas; Update applies them.
type OrbitCamera struct {
	Perspective

	// Point to orbit around
	Target mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // Elevation above the XZ plane, radians
	Yaw      float32 // Around +Y, measured from +Z, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32 // Radians per pixel
	ZoomSensitivity float32 // Fraction of distance per wheel step

	// Damping carries a decaying share of each input over later frames.
	Damping       bool
	DampingFactor float32

	pendingYaw   float32
	pendingPitch float32
	pendingZoom  float32 // log-scale distance change
}

// NewOrbitCamera creates a camera at position looking at the origin.
func NewOrbitCamera(fov, aspect, near, far float32, position mgl32.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		Perspective:     Perspective{FOV: fov, Aspect: aspect, Near: near, Far: far},
		MinDistance:     0.2,
		MaxDistance:     20,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		Damping:         true,
		DampingFactor:   0.05,
	}
	c.SetPosition(position)
	return c
}

// SetPosition moves the camera to world position p, keeping Target.
// Pending input is dropped.
func (c *OrbitCamera) SetPosition(p mgl32.Vec3) {
	off := p.Sub(c.Target)
	c.Distance = off.Len()
	if c.Distance == 0 {
		c.Distance = 1
		off = mgl32.Vec3{0, 0, 1}
	}
	c.Pitch = float32(math.Asin(float64(off.Y() / c.Distance)))
	c.Yaw = float32(math.Atan2(float64(off.X()), float64(off.Z())))
	c.pendingYaw, c.pendingPitch, c.pendingZoom = 0, 0, 0
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp := math.Cos(float64(c.Pitch))
	off := mgl32.Vec3{
		c.Distance * float32(cp*math.Sin(float64(c.Yaw))),
		c.Distance * float32(math.Sin(float64(c.Pitch))),
		c.Distance * float32(cp*math.Cos(float64(c.Yaw))),
	}
	return c.Target.Add(off)
}

// View returns the view matrix.
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ViewProj returns projection * view.
func (c *OrbitCamera) ViewProj() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// HandleDrag queues a rotation from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.pendingYaw -= deltaX * c.DragSensitivity
	c.pendingPitch += deltaY * c.DragSensitivity
}

// HandleZoom queues a zoom from a wheel delta. Positive moves closer.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.pendingZoom -= delta * c.ZoomSensitivity
}

// Moving reports whether queued input is still being applied.
func (c *OrbitCamera) Moving() bool {
	const eps = 1e-5
	return abs(c.pendingYaw) > eps || abs(c.pendingPitch) > eps || abs(c.pendingZoom) > eps
}

// Update applies queued input. Call once per frame.
func (c *OrbitCamera) Update() {
	share := float32(1)
	if c.Damping && c.DampingFactor > 0 {
		share = c.DampingFactor
	}

	c.Yaw += c.pendingYaw * share
	c.Pitch = clamp(c.Pitch+c.pendingPitch*share, c.MinPitch, c.MaxPitch)
	c.Distance = clamp(c.Distance*float32(math.Exp(float64(c.pendingZoom*share))), c.MinDistance, c.MaxDistance)

	keep := 1 - share
	c.pendingYaw *= keep
	c.pendingPitch *= keep
	c.pendingZoom *= keep
	if !c.Moving() {
		c.pendingYaw, c.pendingPitch, c.pendingZoom = 0, 0, 0
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
