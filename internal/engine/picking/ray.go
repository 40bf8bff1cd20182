// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// NewAABB creates an AABB from two corners, ordering each axis.
func NewAABB(a, b math.Vec3) AABB {
	lo := a.Min(b)
	hi := a.Max(b)
	return AABB{Min: lo.Array(), Max: hi.Array()}
}

// FromBounds converts scene bounds.
func FromBounds(b scene.Bounds) AABB {
	return NewAABB(b.Min, b.Max)
}

// Unproject maps a normalized device point at depth z (-1 near, 1 far)
// back to world space through the inverse view-projection matrix.
func Unproject(ndc math.Vec2, z float32, invViewProj math.Mat4) math.Vec3 {
	p := invViewProj.MulVec4(math.Vec4{ndc.X, ndc.Y, z, 1.0})

	// Perspective divide
	if p[3] != 0 {
		p[0] /= p[3]
		p[1] /= p[3]
		p[2] /= p[3]
	}
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// RayFromNDC builds a ray anchored at eye passing through the point on the
// near plane under ndc. For a perspective camera, eye is the camera position.
func RayFromNDC(ndc math.Vec2, invViewProj math.Mat4, eye math.Vec3) Ray {
	near := Unproject(ndc, -1, invViewProj)
	dir := near.Sub(eye).Normalize()
	if dir == (math.Vec3{}) {
		// eye on the near plane (orthographic-style): fall back to near->far
		far := Unproject(ndc, 1, invViewProj)
		return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
	}
	return Ray{Origin: eye, Direction: dir}
}

// IntersectAABB returns the distance along r to box: the entry distance,
// or the exit distance when r starts inside. A ray with a NaN or infinite
// component, or a zero direction, never hits.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	origin := r.Origin.Array()
	dir := r.Direction.Array()
	for axis := 0; axis < 3; axis++ {
		if !finite(origin[axis]) || !finite(dir[axis]) {
			return 0, false
		}
	}
	if r.Direction == (math.Vec3{}) {
		return 0, false
	}

	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - origin[axis]) / dir[axis]
		t2 := (box.Max[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

func finite(v float32) bool {
	return !gomath.IsNaN(float64(v)) && !gomath.IsInf(float64(v), 0)
}
