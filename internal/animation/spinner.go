package animation

import (
	gomath "math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

// Spinner rotates a node around an axis at a constant rate, one full turn
// per period.
type Spinner struct {
	node    *scene.Node
	axis    math.Vec3
	base    math.Quat
	period  float32
	elapsed float32
	tween   *gween.Tween
}

// NewSpinner captures node's current rotation as the starting orientation.
func NewSpinner(node *scene.Node, axis math.Vec3, period float32) *Spinner {
	return &Spinner{
		node:   node,
		axis:   axis.Normalize(),
		base:   node.Rotation,
		period: period,
		tween:  gween.New(0, 2*gomath.Pi, period, ease.Linear),
	}
}

// Angle returns the current rotation angle in radians.
func (s *Spinner) Angle() float32 {
	angle, _ := s.tween.Set(s.elapsed)
	return angle
}

// Update advances the spin by dt seconds and writes the node rotation.
func (s *Spinner) Update(dt float32) {
	if s.period <= 0 {
		return
	}
	s.elapsed = float32(gomath.Mod(float64(s.elapsed+dt), float64(s.period)))
	s.node.Rotation = s.base.Mul(math.QuatFromAxisAngle(s.axis, s.Angle()))
}
