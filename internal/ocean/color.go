package ocean

import "github.com/go-gl/mathgl/mgl32"

// MixFactor maps an elevation to the depth/surface blend weight in [0, 1].
func MixFactor(p Params, elevation float32) float32 {
	return clamp01((elevation + p.ColorOffset) * p.ColorMultiplier)
}

// Color returns the surface color for an elevation.
func Color(p Params, elevation float32) mgl32.Vec3 {
	t := MixFactor(p, elevation)
	return p.DepthColor.Mul(1 - t).Add(p.SurfaceColor.Mul(t))
}

func clamp01(v float32) float32 {
	// NaN falls through to 0.
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
