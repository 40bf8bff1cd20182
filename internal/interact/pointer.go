// Package interact turns pointer clicks into scene actions: a click is
// mapped to a ray, hit-tested against the scene, resolved to a named
// entity and used to pause or resume that entity's animation.
package interact

import (
	gomath "math"

	"github.com/Faultbox/scenepick/internal/engine/picking"
	"github.com/Faultbox/scenepick/pkg/math"
)

// PointerSample is one click: the pixel offset inside the viewport and the
// viewport size at the time of the click.
type PointerSample struct {
	OffsetX, OffsetY float32
	Width, Height    float32
}

// ToNDC maps the sample to normalized device coordinates. Pixel Y grows
// downward, device Y grows upward. Width and Height must be positive.
func ToNDC(s PointerSample) math.Vec2 {
	return math.Vec2{
		X: (s.OffsetX/s.Width)*2 - 1,
		Y: -(s.OffsetY/s.Height)*2 + 1,
	}
}

// Valid reports whether the sample maps to a finite device point: the
// viewport must have positive size and every field must be a number.
func (s PointerSample) Valid() bool {
	if !(s.Width > 0) || !(s.Height > 0) {
		return false
	}
	ndc := ToNDC(s)
	return finite(ndc.X) && finite(ndc.Y)
}

func finite(v float32) bool {
	return !gomath.IsNaN(float64(v)) && !gomath.IsInf(float64(v), 0)
}

// Camera is anything that can cast a ray through a device point.
type Camera interface {
	Ray(ndc math.Vec2) picking.Ray
}
