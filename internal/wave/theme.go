package wave

// Theme is the light/dark flag read by the draw step. It has a single writer
// (whoever owns the toggle) and any number of observers.
type Theme struct {
	dark   bool
	nextID int
	subs   map[int]func(dark bool)
}

// NewTheme returns a theme starting in the given mode.
func NewTheme(dark bool) *Theme {
	return &Theme{dark: dark, subs: make(map[int]func(bool))}
}

// Dark reports whether the dark theme is active. A nil theme reads as light.
func (t *Theme) Dark() bool {
	return t != nil && t.dark
}

// Set changes the mode and notifies observers when it actually changes.
func (t *Theme) Set(dark bool) {
	if t.dark == dark {
		return
	}
	t.dark = dark
	n := t.nextID
	for id := 0; id < n; id++ {
		if fn, ok := t.subs[id]; ok {
			fn(dark)
		}
	}
}

// Toggle flips the mode.
func (t *Theme) Toggle() {
	t.Set(!t.dark)
}

// Subscribe registers fn for mode changes and returns a function removing it.
func (t *Theme) Subscribe(fn func(dark bool)) (unsubscribe func()) {
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	return func() { delete(t.subs, id) }
}
