// Package app wires the ocean model, the animation loop, the surface mesh
// and the camera into the per-frame work both hosts share. Nothing here
// touches OpenGL.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/engine/camera"
	"github.com/Faultbox/raging-sea/internal/engine/display"
	"github.com/Faultbox/raging-sea/internal/engine/water"
	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

// Core is the host-independent state of a running viewer.
type Core struct {
	Store   *ocean.Store
	Loop    *ocean.Loop
	Surface *water.Surface
	Camera  *camera.OrbitCamera
	Resizer *display.Resizer
	Stats   *Stats

	initial   ocean.Params
	lastStep  time.Time
	clock     ocean.Clock
	frameLog  *zap.Logger
	panelLog  *zap.Logger
	lastFrame ocean.Frame
}

// NewCore builds the store, loop, surface and camera from cfg.
// A nil clock means wall-clock time.
func NewCore(cfg *config.Config, clock ocean.Clock) (*Core, error) {
	if clock == nil {
		clock = time.Now
	}

	initial, err := ParamsFromConfig(cfg.Ocean)
	if err != nil {
		return nil, fmt.Errorf("initial parameters: %w", err)
	}

	noise, err := ocean.NewNoise(cfg.Ocean.Noise)
	if err != nil {
		return nil, err
	}

	grid := water.BuildGrid(cfg.Render.PlaneSize, cfg.Render.PlaneSize, cfg.Render.Segments, cfg.Render.Segments)

	cam := camera.NewOrbitCamera(
		cfg.Camera.FOV,
		float32(cfg.Window.Width)/float32(cfg.Window.Height),
		cfg.Camera.Near,
		cfg.Camera.Far,
		mgl32.Vec3(cfg.Camera.Position),
	)
	cam.Damping = cfg.Camera.Damping
	cam.DampingFactor = cfg.Camera.DampingFactor

	store := ocean.NewStore(initial)
	c := &Core{
		Store:    store,
		Loop:     ocean.NewLoop(store, clock),
		Surface:  water.NewSurface(grid, ocean.NewModel(noise), cfg.Render.Workers),
		Camera:   cam,
		Resizer:  display.NewResizer(cam, cfg.Render.MaxPixelRatio),
		Stats:    NewStats(),
		initial:  initial,
		clock:    clock,
		frameLog: logger.Frame(),
		panelLog: logger.Named("panel"),
	}
	c.Loop.OnRejected = func(err error) {
		c.panelLog.Warn("parameter command rejected", zap.Error(err))
	}
	c.lastStep = clock()

	logger.Info("ocean ready",
		zap.String("noise", cfg.Ocean.Noise),
		zap.Int("segments", cfg.Render.Segments),
		zap.Int("vertices", grid.VertexCount()),
		zap.Int("workers", cfg.Render.Workers),
	)
	return c, nil
}

// Step advances one frame: applies queued edits, advances time, moves the
// camera and displaces every vertex. The returned heights stay valid until
// the next Step.
func (c *Core) Step() (ocean.Frame, []float32) {
	now := c.clock()
	frameTime := now.Sub(c.lastStep)
	c.lastStep = now

	frame := c.Loop.Tick()
	c.Camera.Update()
	heights := c.Surface.Displace(frame.Params)

	c.Stats.Update(frameTime, c.Surface.LastDuration())
	c.lastFrame = frame

	c.frameLog.Debug("frame",
		zap.Uint64("frame", frame.Number),
		zap.Float32("elapsed", frame.Params.ElapsedTime),
		zap.Duration("displace", c.Surface.LastDuration()),
		zap.Float64("fps", c.Stats.FPS()),
	)
	return frame, heights
}

// LastFrame returns the frame produced by the last Step.
func (c *Core) LastFrame() ocean.Frame {
	return c.lastFrame
}

// Initial returns the parameters the store started with.
func (c *Core) Initial() ocean.Params {
	return c.initial
}

// Reset queues commands restoring every panel control to its initial value.
func (c *Core) Reset() {
	for _, cmd := range ResetCommands(c.initial) {
		c.Store.Post(cmd)
	}
	c.panelLog.Info("parameters reset")
}

// VertexCount returns the number of displaced vertices per frame.
func (c *Core) VertexCount() int {
	return c.Surface.Grid.VertexCount()
}
