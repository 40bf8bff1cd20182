package demo

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/scenepick/internal/animation"
	"github.com/Faultbox/scenepick/internal/assets"
	"github.com/Faultbox/scenepick/internal/config"
	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

type stubLoader struct {
	err   error
	clips []string
	path  string
}

func (l *stubLoader) LoadModel(path, name string) (*assets.Model, error) {
	l.path = path
	if l.err != nil {
		return nil, l.err
	}
	root := scene.NewGroup(name)
	armature := scene.NewGroup("Armature")
	armature.MustAdd(scene.NewMesh("vanguard_Mesh", scene.Bounds{
		Min: math.Vec3{X: -0.4, Y: 0, Z: -0.2},
		Max: math.Vec3{X: 0.4, Y: 1.8, Z: 0.2},
	}))
	root.MustAdd(armature)

	m := &assets.Model{Root: root}
	for _, c := range l.clips {
		m.Clips = append(m.Clips, &animation.Clip{Name: c, Duration: 1})
	}
	return m, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Window.Width = 800
	cfg.Window.Height = 600
	return cfg
}

func enterSoldier(t *testing.T, cfg *config.Config, loader *stubLoader) *Soldier {
	t.Helper()
	s := NewSoldier(cfg, loader, nil)
	if err := s.Enter(); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	return s
}

func TestSoldierSceneLayout(t *testing.T) {
	loader := &stubLoader{clips: []string{"Idle", "Walk"}}
	s := enterSoldier(t, testConfig(), loader)

	if loader.path != "Soldier.glb" {
		t.Errorf("loaded %q, want Soldier.glb", loader.path)
	}

	roots := s.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	kinds := map[scene.Kind]int{}
	for _, c := range roots[0].Children() {
		kinds[c.Kind]++
	}
	if kinds[scene.KindPlane] != 1 || kinds[scene.KindGridHelper] != 1 || kinds[scene.KindLight] != 1 {
		t.Errorf("unexpected scene children: %v", kinds)
	}
	if roots[0].Find(scene.GroundName) == nil {
		t.Error("ground plane missing")
	}
	if roots[0].Find("Soldier") == nil {
		t.Error("model root not renamed to Soldier")
	}

	cam := s.Camera()
	if cam.Position != (math.Vec3{X: 0, Y: 5, Z: 5}) || cam.FovY != 75 {
		t.Errorf("camera = %+v", cam)
	}
	if abs(cam.Aspect-800.0/600.0) > 1e-6 {
		t.Errorf("aspect = %f", cam.Aspect)
	}

	if s.Action() == nil || !s.Action().IsRunning() {
		t.Fatal("Walk should be playing after Enter")
	}
	if s.Action().Clip().Name != "Walk" {
		t.Errorf("playing %s, want Walk", s.Action().Clip().Name)
	}
	if s.Status() != "Walk playing" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestSoldierClickToggles(t *testing.T) {
	s := enterSoldier(t, testConfig(), &stubLoader{clips: []string{"Walk"}})

	s.Click(400, 300, 800, 600)
	out := s.LastClick()
	if out.Target == nil || out.Target.Name != "Soldier" {
		t.Fatalf("target = %v, want Soldier", out.Target)
	}
	if !out.Toggled || !s.Action().Paused {
		t.Fatal("first click should pause")
	}
	if s.Status() != "Walk paused" {
		t.Errorf("Status = %q", s.Status())
	}

	before := s.Action().Time()
	s.Update(0.5)
	if s.Action().Time() != before {
		t.Error("paused action advanced")
	}

	s.Click(400, 300, 800, 600)
	if s.Action().Paused {
		t.Error("second click should resume")
	}
	s.Update(0.5)
	if s.Action().Time() == before {
		t.Error("resumed action did not advance")
	}
}

func TestSoldierClickMiss(t *testing.T) {
	s := enterSoldier(t, testConfig(), &stubLoader{clips: []string{"Walk"}})

	tests := []struct {
		name string
		x, y int
	}{
		{"top left", 0, 0},
		{"bottom right ground", 790, 590},
		{"top edge", 400, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Click(tt.x, tt.y, 800, 600)
			if s.LastClick().Toggled || s.Action().Paused {
				t.Errorf("click at (%d,%d) should not toggle", tt.x, tt.y)
			}
		})
	}

	s.Click(10, 10, 0, 0)
	if s.Action().Paused {
		t.Error("click with empty viewport should be ignored")
	}
}

func TestSoldierMissingClip(t *testing.T) {
	cfg := testConfig()
	cfg.Scene.Clip = "Run"
	s := enterSoldier(t, cfg, &stubLoader{clips: []string{"Idle"}})

	if s.Action() != nil {
		t.Fatal("no action expected for a missing clip")
	}
	if s.Status() != "no animation" {
		t.Errorf("Status = %q", s.Status())
	}

	s.Click(400, 300, 800, 600)
	out := s.LastClick()
	if out.Target == nil || out.Toggled {
		t.Errorf("outcome = %+v, want target found without toggle", out)
	}
	s.Key(KeyReset)
	s.Key(KeyToggle)
}

func TestSoldierLoadError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSoldier(testConfig(), &stubLoader{err: boom}, nil)
	if err := s.Enter(); !errors.Is(err, boom) {
		t.Errorf("Enter error = %v, want wrapped boom", err)
	}
}

func TestSoldierFadeIn(t *testing.T) {
	cfg := testConfig()
	cfg.Scene.FadeIn = 0.5
	s := enterSoldier(t, cfg, &stubLoader{clips: []string{"Walk"}})

	if s.Action().Weight() != 0 {
		t.Errorf("initial weight = %f, want 0", s.Action().Weight())
	}
	s.Update(0.25)
	if w := s.Action().Weight(); abs(w-0.5) > 1e-4 {
		t.Errorf("weight after 0.25s = %f, want 0.5", w)
	}
}

func TestSoldierKeys(t *testing.T) {
	s := enterSoldier(t, testConfig(), &stubLoader{clips: []string{"Walk"}})
	s.Update(0.4)
	s.Key(KeyToggle)
	if !s.Action().Paused {
		t.Fatal("KeyToggle should pause")
	}

	s.Key(KeyReset)
	a := s.Action()
	if a.Paused || !a.Enabled() || a.Time() != 0 {
		t.Errorf("after reset paused=%v enabled=%v time=%f", a.Paused, a.Enabled(), a.Time())
	}

	if err := s.Exit(); err != nil {
		t.Fatalf("Exit: %v", err)
	}
	if s.Status() != "Walk stopped" {
		t.Errorf("Status after Exit = %q", s.Status())
	}
}

func TestViewControls(t *testing.T) {
	s := NewSoldier(testConfig(), &stubLoader{}, nil)
	cam := s.Camera()

	s.Resize(1000, 500)
	if cam.Aspect != 2 {
		t.Errorf("aspect = %f, want 2", cam.Aspect)
	}
	s.Resize(0, 500)
	if cam.Aspect != 2 {
		t.Error("zero-width resize should be ignored")
	}

	dist := cam.Position.Distance(cam.Target)
	s.Drag(100, 0)
	if abs(cam.Position.Distance(cam.Target)-dist) > 1e-3 {
		t.Error("drag should keep the orbit distance")
	}
	if cam.Position.X == 0 {
		t.Error("horizontal drag should move the camera sideways")
	}

	s.Zoom(1)
	if cam.Position.Distance(cam.Target) >= dist {
		t.Error("zoom in should move the camera closer")
	}
}

func TestSkyboxSpin(t *testing.T) {
	cfg := testConfig()
	cfg.Scene.SkyboxPeriod = 60
	s := NewSkybox(cfg, nil)
	if err := s.Enter(); err != nil {
		t.Fatalf("Enter: %v", err)
	}

	root := s.Roots()[0]
	if root.Find(CubeName) == nil || root.Find("skybox") == nil {
		t.Fatal("cube or skybox missing")
	}

	s.Update(15)
	if a := s.spinner.Angle(); abs(a-gomath.Pi/2) > 1e-4 {
		t.Errorf("angle after a quarter period = %f, want pi/2", a)
	}

	s.Click(400, 300, 800, 600)
	if !s.Stopped() {
		t.Fatal("clicking the cube should stop the spin")
	}
	angle := s.spinner.Angle()
	s.Update(5)
	if s.spinner.Angle() != angle {
		t.Error("stopped skybox kept turning")
	}

	// The skybox itself carries no pick geometry.
	s.Click(0, 0, 800, 600)
	if !s.Stopped() {
		t.Error("clicking empty sky should not toggle")
	}

	s.Key(KeyReset)
	if s.sky.Rotation != math.QuatIdentity() || s.spinner.Angle() != 0 {
		t.Error("reset should restore the initial orientation")
	}
	s.Key(KeyToggle)
	if s.Stopped() {
		t.Error("KeyToggle should restart the spin")
	}
}
