package debug

// FPSCounter averages frame rate over fixed windows.
type FPSCounter struct {
	Window float32 // seconds per sample

	frames  int
	elapsed float32
	fps     float32
	frameMS float32
}

// NewFPSCounter returns a counter that publishes once per second.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{Window: 1}
}

// Tick records one frame of dt seconds. It returns true when a new
// sample is available.
func (c *FPSCounter) Tick(dt float32) bool {
	c.frames++
	c.elapsed += dt
	if c.elapsed < c.Window {
		return false
	}
	c.fps = float32(c.frames) / c.elapsed
	c.frameMS = c.elapsed * 1000 / float32(c.frames)
	c.frames = 0
	c.elapsed = 0
	return true
}

// FPS returns the last published frame rate.
func (c *FPSCounter) FPS() float32 {
	return c.fps
}

// FrameMS returns the last published mean frame time in milliseconds.
func (c *FPSCounter) FrameMS() float32 {
	return c.frameMS
}
