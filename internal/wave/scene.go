package wave

import "log"

// Scene owns the wave grid, animates it, and draws it onto a surface at a
// capped frame rate.
type Scene struct {
	viewport  *Viewport
	surface   Surface
	theme     *Theme
	frames    FrameScheduler
	settings  Settings
	displacer Displacer

	grid    *Grid
	profile Profile
	compact bool
	epoch   int

	lastFrame     float64
	frameInterval float64
	paused        bool
	running       bool
	pending       FrameHandle
	lastTime      float64

	unsubscribe []func()
}

// NewScene wires a scene to its collaborators. It regenerates on every
// viewport resize and restyles on every theme change. A nil displacer
// selects the CPU backend.
func NewScene(vp *Viewport, surface Surface, theme *Theme, frames FrameScheduler, settings Settings, displacer Displacer) *Scene {
	if displacer == nil {
		displacer = CPUDisplacer{}
	}
	s := &Scene{
		viewport:      vp,
		surface:       surface,
		theme:         theme,
		frames:        frames,
		settings:      settings,
		displacer:     displacer,
		frameInterval: settings.FrameInterval(),
	}
	if vp != nil {
		s.unsubscribe = append(s.unsubscribe, vp.Subscribe(func(ViewportState) { s.Generate() }))
	}
	if theme != nil {
		s.unsubscribe = append(s.unsubscribe, theme.Subscribe(func(bool) { s.Draw() }))
	}
	return s
}

// Generate replaces the grid using the current viewport dimensions and
// device profile, then restarts the animation loop.
func (s *Scene) Generate() {
	if s.surface == nil || s.viewport == nil {
		return
	}
	st := s.viewport.State()
	s.compact = st.Compact
	s.profile = s.settings.ProfileFor(st.Compact)
	s.grid = NewGrid(st.Width, st.Height, s.profile)
	s.epoch++
	s.Start()
}

// Move advances every interior point to its displacement at time t
// (milliseconds). Endpoints are re-pinned after the backend runs.
func (s *Scene) Move(t float64) {
	if s.grid == nil {
		return
	}
	if err := s.displacer.Displace(s.grid, t, s.profile.Amplitude); err != nil {
		log.Printf("%s displacement failed, falling back to cpu: %v", s.displacer.Name(), err)
		s.displacer.Close()
		s.displacer = CPUDisplacer{}
		_ = s.displacer.Displace(s.grid, t, s.profile.Amplitude)
	}
	s.grid.pinEdges()
	s.lastTime = t
}

// Draw serializes the grid and replaces the surface contents in one call.
func (s *Scene) Draw() {
	if s.surface == nil || s.grid == nil {
		return
	}
	s.surface.ReplacePaths(s.Paths())
}

// Paths returns the drawable elements for the current grid state.
func (s *Scene) Paths() []PathElement {
	if s.grid == nil {
		return nil
	}
	stroke := strokeFor(s.theme.Dark(), s.profile)
	paths := make([]PathElement, 0, len(s.grid.Lines))
	for _, line := range s.grid.Lines {
		paths = append(paths, PathElement{Path: linePath(line), Stroke: stroke})
	}
	return paths
}

// Start (re)starts the loop, cancelling any frame already scheduled.
func (s *Scene) Start() {
	if s.frames == nil {
		return
	}
	s.cancelPending()
	s.running = true
	s.pending = s.frames.RequestFrame(s.Tick)
}

// Stop ends the loop and cancels the scheduled frame.
func (s *Scene) Stop() {
	s.running = false
	s.cancelPending()
}

func (s *Scene) cancelPending() {
	if s.pending != 0 && s.frames != nil {
		s.frames.CancelFrame(s.pending)
	}
	s.pending = 0
}

// Tick is the per-frame entry point. It moves and draws at most once per
// frame interval and reschedules itself while the loop is running.
func (s *Scene) Tick(timestamp float64) {
	// A manual Tick must not leave a second chain behind.
	s.cancelPending()
	if !s.paused && timestamp-s.lastFrame >= s.frameInterval {
		s.lastFrame = timestamp
		s.Move(timestamp)
		s.Draw()
	}
	if s.running && s.frames != nil {
		s.pending = s.frames.RequestFrame(s.Tick)
	}
}

// Close stops the loop, detaches from the viewport and theme, and releases
// the displacement backend.
func (s *Scene) Close() {
	s.Stop()
	for _, fn := range s.unsubscribe {
		fn()
	}
	s.unsubscribe = nil
	s.displacer.Close()
}

// SetPaused suspends or resumes displacement and drawing. The frame chain
// keeps running either way.
func (s *Scene) SetPaused(paused bool) { s.paused = paused }

// Paused reports whether the loop is suspended.
func (s *Scene) Paused() bool { return s.paused }

// Running reports whether the loop is scheduled.
func (s *Scene) Running() bool { return s.running }

// Grid returns the current grid. It is replaced, not mutated in place, on
// regeneration.
func (s *Scene) Grid() *Grid { return s.grid }

// Profile returns the device profile used by the current grid.
func (s *Scene) Profile() Profile { return s.profile }

// Compact reports whether the current grid uses the compact profile.
func (s *Scene) Compact() bool { return s.compact }

// Epoch counts grid generations.
func (s *Scene) Epoch() int { return s.epoch }

// LastTime returns the timestamp of the latest displacement pass.
func (s *Scene) LastTime() float64 { return s.lastTime }

// Backend names the displacement backend in use.
func (s *Scene) Backend() string { return s.displacer.Name() }
