// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/scenepick/internal/engine/picking"
	"github.com/Faultbox/scenepick/pkg/math"
)

// Perspective is a look-at camera with a perspective projection.
type Perspective struct {
	FovY   float32 // degrees
	Aspect float32 // width / height
	Near   float32
	Far    float32

	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fovY, aspect, near, far float32) *Perspective {
	return &Perspective{
		FovY:   fovY,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: math.Vec3{Z: -1},
		Up:     math.Vec3{Y: 1},
	}
}

// SetViewport updates the aspect ratio after a resize. Zero sizes are ignored.
func (c *Perspective) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ProjectionMatrix returns the perspective projection.
func (c *Perspective) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY*gomath.Pi/180, c.Aspect, c.Near, c.Far)
}

// ViewMatrix returns the world-to-camera transform.
func (c *Perspective) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ViewProjection returns projection * view.
func (c *Perspective) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Ray returns the ray from the camera position through the normalized
// device point ndc.
func (c *Perspective) Ray(ndc math.Vec2) picking.Ray {
	return picking.RayFromNDC(ndc, c.ViewProjection().Inverse(), c.Position)
}
