package animation

// Mixer owns the actions for one model and advances them together.
type Mixer struct {
	actions map[*Clip]*Action
	order   []*Action
	time    float32
}

// NewMixer creates an empty mixer.
func NewMixer() *Mixer {
	return &Mixer{actions: make(map[*Clip]*Action)}
}

// ClipAction returns the action for clip, creating it on first use.
// Repeated calls with the same clip return the same action.
func (m *Mixer) ClipAction(clip *Clip) *Action {
	if clip == nil {
		return nil
	}
	if a, ok := m.actions[clip]; ok {
		return a
	}
	a := newAction(clip)
	m.actions[clip] = a
	m.order = append(m.order, a)
	return a
}

// Actions returns the actions in creation order.
func (m *Mixer) Actions() []*Action {
	return m.order
}

// Time returns the total mixer time in seconds.
func (m *Mixer) Time() float32 {
	return m.time
}

// Update advances every enabled, unpaused action by dt seconds.
func (m *Mixer) Update(dt float32) {
	if dt < 0 {
		return
	}
	m.time += dt
	for _, a := range m.order {
		a.update(dt)
	}
}

// StopAll stops every action.
func (m *Mixer) StopAll() {
	for _, a := range m.order {
		a.Stop()
	}
}
