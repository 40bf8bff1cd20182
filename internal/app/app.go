// Package app runs a demo inside an SDL window: it owns the window, the
// renderer and the frame loop and routes input to the demo.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenepick/internal/config"
	"github.com/Faultbox/scenepick/internal/demo"
	"github.com/Faultbox/scenepick/internal/engine/debug"
	"github.com/Faultbox/scenepick/internal/engine/input"
	"github.com/Faultbox/scenepick/internal/engine/renderer"
	"github.com/Faultbox/scenepick/internal/engine/window"
	"github.com/Faultbox/scenepick/internal/logger"
)

// clickSlop is how far, in pixels, the pointer may travel between press
// and release for the release to still count as a click.
const clickSlop = 4

// maxFrameTime caps dt after stalls such as window drags.
const maxFrameTime = 0.25

// Shell is the running application.
type Shell struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	stats    *debug.FPSCounter
	shots    *debug.Screenshots

	// pointer travel since the last left press
	moved int
}

// New opens the window and creates the renderer.
func New(cfg *config.Config) (*Shell, error) {
	s := &Shell{
		cfg:   cfg,
		log:   logger.Named("app"),
		input: input.New(),
		stats: debug.NewFPSCounter(),
		shots: debug.NewScreenshots("screenshots", "scenepick"),
	}

	s.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	s.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	dw, dh := s.window.DrawableSize()
	s.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: [3]float32{0.1, 0.1, 0.15},
	})
	if err != nil {
		s.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return s, nil
}

// Run enters d and drives it until the window closes or Escape is pressed.
func (s *Shell) Run(d demo.Demo) error {
	if err := d.Enter(); err != nil {
		return fmt.Errorf("enter: %w", err)
	}
	defer func() {
		if err := d.Exit(); err != nil {
			s.log.Warn("exit failed", zap.Error(err))
		}
	}()

	d.Resize(s.window.Size())

	s.running = true
	last := time.Now()
	s.log.Info("starting frame loop")

	for s.running {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		if s.input.Update() {
			break
		}
		s.dispatch(d)

		if err := d.Update(dt); err != nil {
			return fmt.Errorf("update: %w", err)
		}

		s.renderer.Begin()
		s.renderer.DrawScene(d.Roots(), d.Camera().ViewProjection(), d.Light())
		s.window.SwapBuffers()

		if s.stats.Tick(dt) {
			s.log.Debug("fps",
				zap.Float32("fps", s.stats.FPS()),
				zap.Float32("frame_ms", s.stats.FrameMS()),
			)
			if s.cfg.Window.ShowFPS {
				s.window.SetTitle(fmt.Sprintf("%s | %.0f fps | %s", s.cfg.Window.Title, s.stats.FPS(), d.Status()))
			}
		}
	}

	s.log.Info("frame loop stopped")
	return nil
}

// dispatch routes this frame's events to the shell and the demo.
func (s *Shell) dispatch(d demo.Demo) {
	for _, e := range s.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			s.renderer.Resize(s.window.DrawableSize())
			d.Resize(e.Width, e.Height)

		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE:
				s.running = false
			case sdl.SCANCODE_F12:
				s.screenshot()
			case sdl.SCANCODE_R:
				d.Key(demo.KeyReset)
			case sdl.SCANCODE_SPACE:
				d.Key(demo.KeyToggle)
			}

		case input.EventMouseDown:
			if e.Button == input.ButtonLeft {
				s.moved = 0
			}

		case input.EventMouseMove:
			s.moved += abs(e.DeltaX) + abs(e.DeltaY)
			if s.input.IsButtonDown(input.ButtonRight) {
				d.Drag(e.DeltaX, e.DeltaY)
			}

		case input.EventMouseUp:
			if e.Button == input.ButtonLeft && s.moved <= clickSlop {
				w, h := s.window.Size()
				d.Click(e.MouseX, e.MouseY, w, h)
			}

		case input.EventMouseWheel:
			d.Zoom(e.WheelY)
		}
	}
}

func (s *Shell) screenshot() {
	pixels, w, h := s.renderer.ReadPixels()
	path, err := s.shots.Save(pixels, w, h)
	if err != nil {
		s.log.Error("screenshot failed", zap.Error(err))
		return
	}
	s.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer and window.
func (s *Shell) Close() {
	s.log.Info("closing")
	if s.renderer != nil {
		s.renderer.Close()
	}
	if s.window != nil {
		s.window.Close()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
