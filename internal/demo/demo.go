// Package demo implements the scenes the shell can run: each demo owns a
// scene graph, a camera with orbit controls and its own per-frame logic.
package demo

import (
	"github.com/Faultbox/scenepick/internal/config"
	"github.com/Faultbox/scenepick/internal/engine/camera"
	"github.com/Faultbox/scenepick/internal/scene"
	"github.com/Faultbox/scenepick/pkg/math"
)

// Key is a demo command bound to a keyboard key by the shell.
type Key int

const (
	KeyNone Key = iota
	KeyReset
	KeyToggle
)

// Demo is one runnable scene.
type Demo interface {
	// Enter builds the scene. It is called once before the first frame.
	Enter() error

	// Exit releases anything Enter acquired.
	Exit() error

	// Update advances the demo by dt seconds.
	Update(dt float32) error

	// Roots returns the scene graphs to draw.
	Roots() []*scene.Node

	// Camera returns the camera to draw with.
	Camera() *camera.Perspective

	// Light returns the scene's ambient intensity.
	Light() float32

	// Status is a short line for the window title.
	Status() string

	// Resize is called with the new window size.
	Resize(width, height int)

	// Click is a primary-button click at a window position.
	Click(x, y, width, height int)

	// Drag orbits the camera by a pointer delta in pixels.
	Drag(dx, dy int)

	// Zoom moves the camera toward or away from its target.
	Zoom(delta float32)

	// Key runs a keyboard command.
	Key(k Key)
}

// view holds the camera and orbit controls shared by every demo.
type view struct {
	cam   *camera.Perspective
	orbit *camera.OrbitControls
}

func newView(cfg config.CameraConfig, width, height int) view {
	cam := camera.NewPerspective(cfg.FovY, 1, cfg.Near, cfg.Far)
	cam.SetViewport(width, height)
	cam.Position = vec3(cfg.Position)
	cam.Target = vec3(cfg.Target)
	return view{cam: cam, orbit: camera.NewOrbitControls(cam)}
}

func (v *view) Camera() *camera.Perspective {
	return v.cam
}

func (v *view) Resize(width, height int) {
	v.cam.SetViewport(width, height)
}

func (v *view) Drag(dx, dy int) {
	v.orbit.HandleDrag(float32(dx), float32(dy))
}

func (v *view) Zoom(delta float32) {
	v.orbit.HandleZoom(delta)
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
