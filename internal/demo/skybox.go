package demo

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/scenepick/internal/animation"
	"github.com/Faultbox/scenepick/internal/config"
	"github.com/Faultbox/scenepick/internal/engine/picking"
	"github.com/Faultbox/scenepick/internal/interact"
	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

// CubeName names the cube at the centre of the skybox demo.
const CubeName = "cube"

// Skybox shows a cube inside a slowly turning skybox. Clicking the cube
// stops or restarts the turn.
type Skybox struct {
	view

	cfg *config.Config
	log *zap.Logger

	root     *scene.Node
	cube     *scene.Node
	sky      *scene.Node
	spinner  *animation.Spinner
	resolver interact.Resolver
	hits     *picking.Raycaster
	stopped  bool
}

// NewSkybox creates the demo.
func NewSkybox(cfg *config.Config, log *zap.Logger) *Skybox {
	if log == nil {
		log = zap.NewNop()
	}
	return &Skybox{
		view:     newView(cfg.Camera, cfg.Window.Width, cfg.Window.Height),
		cfg:      cfg,
		log:      log,
		resolver: interact.NewResolver(CubeName),
		hits:     picking.NewRaycaster(),
	}
}

// Enter builds the cube and skybox and starts the spin.
func (s *Skybox) Enter() error {
	sc := s.cfg.Scene
	size := sc.CubeSize

	s.root = scene.NewScene()
	s.cube = scene.NewBox(CubeName, size, size, size)
	s.sky = scene.NewSkybox(sc.SkyboxSize)
	s.root.MustAdd(
		scene.NewAmbientLight([3]float32{1, 1, 1}, sc.AmbientLight),
		s.cube,
		s.sky,
	)
	s.spinner = animation.NewSpinner(s.sky, math.Vec3{Y: 1}, sc.SkyboxPeriod)

	s.log.Info("skybox scene ready",
		zap.Float32("skybox_size", sc.SkyboxSize),
		zap.Float32("period", sc.SkyboxPeriod),
	)
	return nil
}

// Exit does nothing; the scene holds no external resources.
func (s *Skybox) Exit() error {
	return nil
}

// Update turns the skybox unless stopped.
func (s *Skybox) Update(dt float32) error {
	if !s.stopped {
		s.spinner.Update(dt)
	}
	return nil
}

// Roots returns the scene root.
func (s *Skybox) Roots() []*scene.Node {
	if s.root == nil {
		return nil
	}
	return []*scene.Node{s.root}
}

// Light returns the ambient intensity.
func (s *Skybox) Light() float32 {
	return s.cfg.Scene.AmbientLight
}

// Status reports the skybox angle in degrees.
func (s *Skybox) Status() string {
	if s.spinner == nil {
		return ""
	}
	state := "turning"
	if s.stopped {
		state = "stopped"
	}
	return fmt.Sprintf("sky %.0f° %s", s.spinner.Angle()*180/gomath.Pi, state)
}

// Click toggles the spin when the cube is hit.
func (s *Skybox) Click(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	ndc := interact.ToNDC(interact.PointerSample{
		OffsetX: float32(x),
		OffsetY: float32(y),
		Width:   float32(width),
		Height:  float32(height),
	})
	hits := s.hits.IntersectObjects(s.cam.Ray(ndc), s.Roots(), true)
	if _, ok := s.resolver.ResolveHits(hits); !ok {
		return
	}
	s.stopped = !s.stopped
	s.log.Debug("skybox spin toggled", zap.Bool("stopped", s.stopped))
}

// Stopped reports whether the spin is halted.
func (s *Skybox) Stopped() bool {
	return s.stopped
}

// Key handles R (reset the sky orientation) and Space (toggle the spin).
func (s *Skybox) Key(k Key) {
	if s.sky == nil {
		return
	}
	switch k {
	case KeyReset:
		s.sky.Rotation = math.QuatIdentity()
		s.spinner = animation.NewSpinner(s.sky, math.Vec3{Y: 1}, s.cfg.Scene.SkyboxPeriod)
	case KeyToggle:
		s.stopped = !s.stopped
	}
}
