// Package animation provides clip playback state: clips, the actions that
// play them and the mixer that advances actions once per frame.
//
// Pose sampling is left to the renderer; an Action only tracks local time,
// weight and its running/paused state.
package animation

import (
	gomath "math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clip is a named animation with a fixed duration in seconds.
type Clip struct {
	Name     string
	Duration float32
	Channels int // animated targets, informational
}

// LoopMode controls what happens when an action reaches the clip end.
type LoopMode int

const (
	LoopRepeat LoopMode = iota
	LoopOnce
)

// Action is one playable instance of a clip. Paused is toggled directly by
// callers; a paused action keeps its time and weight until resumed.
type Action struct {
	Paused    bool
	Loop      LoopMode
	TimeScale float32

	clip     *Clip
	enabled  bool
	finished bool
	time     float32
	weight   float32
	fade     *gween.Tween
}

func newAction(clip *Clip) *Action {
	return &Action{
		TimeScale: 1,
		clip:      clip,
		weight:    1,
	}
}

// Clip returns the clip this action plays.
func (a *Action) Clip() *Clip {
	return a.clip
}

// Play enables the action. Time is left where it is.
func (a *Action) Play() *Action {
	a.enabled = true
	return a
}

// Stop disables the action and rewinds it.
func (a *Action) Stop() *Action {
	a.enabled = false
	a.fade = nil
	a.Reset()
	return a
}

// Reset rewinds to the start and clears Paused.
func (a *Action) Reset() *Action {
	a.time = 0
	a.finished = false
	a.Paused = false
	return a
}

// IsRunning reports whether Update will advance the action.
func (a *Action) IsRunning() bool {
	return a.enabled && !a.Paused && !a.finished && a.TimeScale != 0
}

// Enabled reports whether Play was called without a later Stop.
func (a *Action) Enabled() bool {
	return a.enabled
}

// Finished reports whether a LoopOnce action reached its end.
func (a *Action) Finished() bool {
	return a.finished
}

// Time returns the local clip time in seconds.
func (a *Action) Time() float32 {
	return a.time
}

// SetTime moves the playhead.
func (a *Action) SetTime(t float32) *Action {
	a.time = t
	a.wrap()
	return a
}

// Weight returns the current blend weight in [0, 1].
func (a *Action) Weight() float32 {
	return a.weight
}

// FadeIn ramps the weight from 0 to 1 over duration seconds.
func (a *Action) FadeIn(duration float32) *Action {
	a.weight = 0
	a.fade = gween.New(0, 1, duration, ease.Linear)
	return a
}

// FadeOut ramps the weight from its current value to 0.
func (a *Action) FadeOut(duration float32) *Action {
	a.fade = gween.New(a.weight, 0, duration, ease.Linear)
	return a
}

// update advances the action by dt seconds of mixer time.
func (a *Action) update(dt float32) {
	if !a.enabled || a.Paused {
		return
	}

	if a.fade != nil {
		w, done := a.fade.Update(dt)
		a.weight = w
		if done {
			a.fade = nil
		}
	}

	if a.finished {
		return
	}
	a.time += dt * a.TimeScale
	a.wrap()
}

func (a *Action) wrap() {
	d := a.clip.Duration
	if d <= 0 {
		a.time = 0
		return
	}
	switch a.Loop {
	case LoopOnce:
		if a.time >= d {
			a.time = d
			a.finished = true
		} else if a.time < 0 {
			a.time = 0
			a.finished = true
		}
	default:
		a.time = float32(gomath.Mod(float64(a.time), float64(d)))
		if a.time < 0 {
			a.time += d
		}
	}
}
