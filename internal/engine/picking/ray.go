// Package picking casts rays from screen coordinates into the world.
package picking

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are logical pixel coordinates with the origin at the top
// left; viewportW/H are the viewport dimensions.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, viewProj mgl32.Mat4) (Ray, bool) {
	if viewportW <= 0 || viewportH <= 0 || viewProj.Det() == 0 {
		return Ray{}, false
	}
	inv := viewProj.Inv()

	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	nearWorld := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	farWorld := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	if nearWorld.W() == 0 || farWorld.W() == 0 {
		return Ray{}, false
	}

	origin := nearWorld.Vec3().Mul(1 / nearWorld.W())
	dir := farWorld.Vec3().Mul(1 / farWorld.W()).Sub(origin)
	if dir.Len() == 0 {
		return Ray{}, false
	}

	return Ray{Origin: origin, Direction: dir.Normalize()}, true
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if mgl32.Abs(r.Direction.Y()) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	return r.Origin.X() + t*r.Direction.X(), r.Origin.Z() + t*r.Direction.Z(), true
}

// IntersectHeightfield finds where the ray meets y = height(x, z). It starts
// on the y = 0 plane and re-intersects at the sampled height, which converges
// while the surface is flatter than the ray is steep.
func (r Ray) IntersectHeightfield(height func(x, z float32) float32, iterations int) (x, z, y float32, ok bool) {
	x, z, ok = r.IntersectPlaneY(0)
	if !ok {
		return 0, 0, 0, false
	}
	for i := 0; i < iterations; i++ {
		nx, nz, hit := r.IntersectPlaneY(height(x, z))
		if !hit {
			break
		}
		x, z = nx, nz
	}
	return x, z, height(x, z), true
}
