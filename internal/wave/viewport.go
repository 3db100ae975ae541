package wave

import "time"

// SizeSource reports the current size of the rendering surface in pixels.
type SizeSource func() (width, height float64)

// ViewportState is a snapshot of the surface size and device class.
type ViewportState struct {
	Width   float64
	Height  float64
	Compact bool
}

// Viewport tracks the rendering surface size and device class and applies
// the size to the drawable surface. Resize signals are debounced.
type Viewport struct {
	source     SizeSource
	surface    Sizer
	breakpoint float64
	state      ViewportState
	resize     *Debouncer

	nextID int
	subs   map[int]func(ViewportState)
}

// NewViewport builds a viewport and initializes it from source.
func NewViewport(source SizeSource, surface Sizer, settings Settings) *Viewport {
	v := &Viewport{
		source:     source,
		surface:    surface,
		breakpoint: settings.Breakpoint,
		subs:       make(map[int]func(ViewportState)),
	}
	v.resize = NewDebouncer(settings.Debounce(), v.OnResize)
	v.Initialize()
	return v
}

// Initialize reads the current size and applies it to the surface.
func (v *Viewport) Initialize() {
	v.refresh()
}

// OnResize re-reads the size, applies it, and notifies subscribers.
func (v *Viewport) OnResize() {
	v.refresh()
	state := v.state
	// Observers added during the notification wait for the next one.
	n := v.nextID
	for id := 0; id < n; id++ {
		if fn, ok := v.subs[id]; ok {
			fn(state)
		}
	}
}

func (v *Viewport) refresh() {
	var w, h float64
	if v.source != nil {
		w, h = v.source()
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	v.state = ViewportState{Width: w, Height: h, Compact: w <= v.breakpoint}
	if v.surface != nil {
		v.surface.SetSize(w, h)
	}
}

// Signal records a resize notification. OnResize runs once the signals have
// been quiet for the debounce window, as observed by Poll.
func (v *Viewport) Signal(now time.Time) {
	v.resize.Call(now)
}

// Poll fires a due debounced resize and reports whether it did.
func (v *Viewport) Poll(now time.Time) bool {
	return v.resize.Poll(now)
}

// ResizePending reports whether a debounced resize is waiting.
func (v *Viewport) ResizePending() bool {
	return v.resize.Pending()
}

// Subscribe registers fn to run after every applied resize.
func (v *Viewport) Subscribe(fn func(ViewportState)) (unsubscribe func()) {
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	return func() { delete(v.subs, id) }
}

// Width returns the last applied width.
func (v *Viewport) Width() float64 {
	return v.state.Width
}

// Height returns the last applied height.
func (v *Viewport) Height() float64 {
	return v.state.Height
}

// IsCompact reports whether the last applied width is at or below the
// breakpoint.
func (v *Viewport) IsCompact() bool {
	return v.state.Compact
}

// State returns a snapshot of the last applied size and device class.
func (v *Viewport) State() ViewportState {
	return v.state
}
