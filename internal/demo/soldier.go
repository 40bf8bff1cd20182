package demo

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenepick/internal/animation"
	"github.com/Faultbox/scenepick/internal/assets"
	"github.com/Faultbox/scenepick/internal/config"
	"github.com/Faultbox/scenepick/internal/interact"
	"github.com/Faultbox/scenepick/internal/scene"
)

// ModelLoader loads a model and names its root node.
type ModelLoader interface {
	LoadModel(path, name string) (*assets.Model, error)
}

// Soldier shows an animated character on a ground plane. Clicking the
// character pauses or resumes its walk cycle.
type Soldier struct {
	view

	cfg    *config.Config
	models ModelLoader
	log    *zap.Logger

	root    *scene.Node
	model   *scene.Node
	mixer   *animation.Mixer
	action  *animation.Action
	handler *interact.Handler

	last interact.Outcome
}

// NewSoldier creates the demo. Nothing is loaded until Enter.
func NewSoldier(cfg *config.Config, models ModelLoader, log *zap.Logger) *Soldier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Soldier{
		view:    newView(cfg.Camera, cfg.Window.Width, cfg.Window.Height),
		cfg:     cfg,
		models:  models,
		log:     log,
		mixer:   animation.NewMixer(),
		handler: interact.NewHandler(cfg.Scene.ModelName, log.Named("click")),
	}
}

// Enter builds the ground, grid and light, loads the model and starts
// the configured clip. A missing clip leaves the model static.
func (s *Soldier) Enter() error {
	sc := s.cfg.Scene

	s.root = scene.NewScene()
	s.root.MustAdd(
		scene.NewGround(sc.GroundSize),
		scene.NewGridHelper(sc.GroundSize, sc.GridDivisions),
		scene.NewAmbientLight([3]float32{1, 1, 1}, sc.AmbientLight),
	)

	model, err := s.models.LoadModel(sc.Model, sc.ModelName)
	if err != nil {
		return fmt.Errorf("loading %s: %w", sc.Model, err)
	}
	s.model = model.Root
	if err := s.root.Add(s.model); err != nil {
		return err
	}

	clip, err := model.FindClip(sc.Clip)
	switch {
	case errors.Is(err, assets.ErrClipNotFound):
		names := make([]string, 0, len(model.Clips))
		for _, c := range model.Clips {
			names = append(names, c.Name)
		}
		s.log.Warn("clip not found, model will not animate",
			zap.String("clip", sc.Clip),
			zap.Strings("available", names),
		)
	case err != nil:
		return err
	default:
		s.action = s.mixer.ClipAction(clip)
		if sc.FadeIn > 0 {
			s.action.FadeIn(sc.FadeIn)
		}
		s.action.Play()
	}

	s.log.Info("soldier scene ready",
		zap.String("model", sc.Model),
		zap.Int("clips", len(model.Clips)),
		zap.Bool("animated", s.action != nil),
	)
	return nil
}

// Exit stops playback.
func (s *Soldier) Exit() error {
	s.mixer.StopAll()
	return nil
}

// Update advances the mixer.
func (s *Soldier) Update(dt float32) error {
	s.mixer.Update(dt)
	return nil
}

// Roots returns the scene root.
func (s *Soldier) Roots() []*scene.Node {
	if s.root == nil {
		return nil
	}
	return []*scene.Node{s.root}
}

// Light returns the ambient intensity.
func (s *Soldier) Light() float32 {
	return s.cfg.Scene.AmbientLight
}

// Status reports the clip and whether it is paused.
func (s *Soldier) Status() string {
	if s.action == nil {
		return "no animation"
	}
	state := "playing"
	switch {
	case !s.action.Enabled():
		state = "stopped"
	case s.action.Paused:
		state = "paused"
	}
	return fmt.Sprintf("%s %s", s.action.Clip().Name, state)
}

// Click runs the pick pipeline against the whole scene.
func (s *Soldier) Click(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	sample := interact.PointerSample{
		OffsetX: float32(x),
		OffsetY: float32(y),
		Width:   float32(width),
		Height:  float32(height),
	}
	s.last = s.handler.HandleClick(sample, s.cam, s.Roots(), s.action)
}

// LastClick returns the outcome of the most recent click.
func (s *Soldier) LastClick() interact.Outcome {
	return s.last
}

// Action returns the playing action, or nil when the clip was missing.
func (s *Soldier) Action() *animation.Action {
	return s.action
}

// Key handles R (rewind and replay) and Space (pause toggle without picking).
func (s *Soldier) Key(k Key) {
	if s.action == nil {
		return
	}
	switch k {
	case KeyReset:
		s.action.Stop().Play()
		s.log.Debug("animation reset", zap.String("clip", s.action.Clip().Name))
	case KeyToggle:
		interact.Toggle(s.model, s.model != nil, s.action)
	}
}
