package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/raging-sea/internal/engine/picking"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

// probeIterations is the number of heightfield refinement steps per probe.
const probeIterations = 4

// Probe is the surface state under a screen point.
type Probe struct {
	X, Z      float32
	Elevation float32
	Mix       float32
	Color     mgl32.Vec3
}

// Probe casts a ray through the logical screen point (x, y) and samples the
// surface of the last frame where it lands. It reports false when the ray
// misses the plane.
func (c *Core) Probe(x, y float32) (Probe, bool) {
	vp := c.Resizer.Current()
	ray, ok := picking.ScreenToRay(x, y, float32(vp.Width), float32(vp.Height), c.Camera.ViewProj())
	if !ok {
		return Probe{}, false
	}

	p := c.lastFrame.Params
	model := c.Surface.Model
	px, pz, h, ok := ray.IntersectHeightfield(func(x, z float32) float32 {
		return model.Elevation(p, x, z)
	}, probeIterations)
	if !ok {
		return Probe{}, false
	}

	grid := c.Surface.Grid
	if mgl32.Abs(px) > grid.Width/2 || mgl32.Abs(pz) > grid.Depth/2 {
		return Probe{}, false
	}

	return Probe{
		X:         px,
		Z:         pz,
		Elevation: h,
		Mix:       ocean.MixFactor(p, h),
		Color:     ocean.Color(p, h),
	}, true
}
