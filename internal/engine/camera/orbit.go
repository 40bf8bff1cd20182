package camera

import (
	gomath "math"

	"github.com/Faultbox/scenepick/pkg/math"
)

// OrbitControls rotates and zooms a Perspective camera around its target.
type OrbitControls struct {
	camera *Perspective

	// Spherical coordinates around camera.Target
	Distance  float32
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitControls attaches controls to cam, taking the initial spherical
// coordinates from the camera's current position and target.
func NewOrbitControls(cam *Perspective) *OrbitControls {
	o := &OrbitControls{
		camera:          cam,
		MinDistance:     0.5,
		MaxDistance:     500.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}

	offset := cam.Position.Sub(cam.Target)
	o.Distance = offset.Length()
	if o.Distance > 0 {
		o.RotationX = float32(gomath.Asin(float64(offset.Y / o.Distance)))
		o.RotationY = float32(gomath.Atan2(float64(offset.X), float64(offset.Z)))
	}
	return o
}

// Camera returns the controlled camera.
func (o *OrbitControls) Camera() *Perspective {
	return o.camera
}

// HandleDrag updates rotation based on mouse drag delta.
func (o *OrbitControls) HandleDrag(deltaX, deltaY float32) {
	o.RotationY -= deltaX * o.DragSensitivity
	o.RotationX += deltaY * o.DragSensitivity
	o.RotationX = clamp(o.RotationX, o.MinPitch, o.MaxPitch)
	o.apply()
}

// HandleZoom updates distance based on scroll wheel delta.
func (o *OrbitControls) HandleZoom(delta float32) {
	o.Distance -= delta * o.Distance * o.ZoomSensitivity
	o.Distance = clamp(o.Distance, o.MinDistance, o.MaxDistance)
	o.apply()
}

// apply writes the spherical coordinates back to the camera position.
func (o *OrbitControls) apply() {
	x := o.Distance * float32(gomath.Cos(float64(o.RotationX))*gomath.Sin(float64(o.RotationY)))
	y := o.Distance * float32(gomath.Sin(float64(o.RotationX)))
	z := o.Distance * float32(gomath.Cos(float64(o.RotationX))*gomath.Cos(float64(o.RotationY)))

	o.camera.Position = o.camera.Target.Add(math.Vec3{X: x, Y: y, Z: z})
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
