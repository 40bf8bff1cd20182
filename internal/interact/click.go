package interact

import (
	"go.uber.org/zap"

	"github.com/Faultbox/scenepick/internal/animation"
	"github.com/Faultbox/scenepick/internal/engine/picking"
	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

// Toggle flips action.Paused when a target was resolved. It reports
// whether the action changed.
func Toggle(target *scene.Node, ok bool, action *animation.Action) bool {
	if !ok || target == nil || action == nil {
		return false
	}
	action.Paused = !action.Paused
	return true
}

// HitTester returns every node a ray intersects, nearest first.
type HitTester interface {
	IntersectObjects(ray picking.Ray, roots []*scene.Node, recursive bool) []picking.Hit
}

// Outcome describes what one click did.
type Outcome struct {
	NDC     math.Vec2
	Hits    int
	Target  *scene.Node
	Toggled bool
	Paused  bool
}

// Handler runs the click pipeline. The zero value is not usable; use
// NewHandler.
type Handler struct {
	Resolver Resolver
	Hits     HitTester
	Log      *zap.Logger
}

// NewHandler returns a handler resolving clicks to target. A nil logger
// disables logging.
func NewHandler(target string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Resolver: NewResolver(target),
		Hits:     picking.NewRaycaster(),
		Log:      log,
	}
}

// HandleClick maps the sample to a ray through cam, hit-tests roots and
// their descendants, and toggles action if the nearest non-decoration hit
// belongs to the target entity. Samples from an empty viewport return the
// zero Outcome without touching action.
func (h *Handler) HandleClick(sample PointerSample, cam Camera, roots []*scene.Node, action *animation.Action) Outcome {
	if !sample.Valid() {
		h.Log.Debug("click ignored, no usable viewport",
			zap.Float32("width", sample.Width),
			zap.Float32("height", sample.Height),
		)
		return Outcome{}
	}
	out := Outcome{NDC: ToNDC(sample)}

	hits := h.Hits.IntersectObjects(cam.Ray(out.NDC), roots, true)
	out.Hits = len(hits)

	target, ok := h.Resolver.ResolveHits(hits)
	if !ok {
		h.Log.Debug("click missed target",
			zap.Float32("ndc_x", out.NDC.X),
			zap.Float32("ndc_y", out.NDC.Y),
			zap.Int("hits", out.Hits),
		)
		return out
	}
	out.Target = target

	if action == nil {
		h.Log.Warn("click on target before its animation was loaded",
			zap.String("target", target.Name),
		)
		return out
	}

	out.Toggled = Toggle(target, ok, action)
	out.Paused = action.Paused
	h.Log.Debug("toggled animation",
		zap.Strings("path", target.Path()),
		zap.String("clip", action.Clip().Name),
		zap.Bool("paused", action.Paused),
	)
	return out
}

// OnClick runs the pipeline with the default resolver for DefaultTarget and
// an unbounded raycaster.
func OnClick(sample PointerSample, cam Camera, roots []*scene.Node, action *animation.Action) Outcome {
	return NewHandler(DefaultTarget, nil).HandleClick(sample, cam, roots, action)
}
