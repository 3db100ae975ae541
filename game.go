package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ENyerere/Personal-website/internal/wave"
)

// Game hosts the wave scene inside an Ebiten window. Ebiten's update loop
// plays the role of the repaint scheduler: every Update drains the frame
// queue and polls the resize debounce.
type Game struct {
	settings wave.Settings
	theme    *wave.Theme
	surface  *screenSurface
	viewport *wave.Viewport
	scene    *wave.Scene
	frames   *wave.FrameQueue

	origin   time.Time
	outsideW int
	outsideH int

	lastDebugLog time.Time
	lastEpoch    int
}

// newGame constructs the viewport first and the scene second, then generates
// the initial grid.
func newGame(settings wave.Settings, isDark bool, displacer wave.Displacer) *Game {
	g := &Game{
		settings: settings,
		theme:    wave.NewTheme(isDark),
		surface:  newScreenSurface(),
		frames:   wave.NewFrameQueue(),
		origin:   time.Now(),
		outsideW: *widthFlag,
		outsideH: *heightFlag,
	}
	g.viewport = wave.NewViewport(g.outsideSize, g.surface, settings)
	g.scene = wave.NewScene(g.viewport, g.surface, g.theme, g.frames, settings, displacer)
	g.scene.SetPaused(*pausedFlag)
	g.scene.Generate()
	log.Printf("Wave scene ready: %s, backend %s", describeGrid(g.scene), g.scene.Backend())
	return g
}

// outsideSize reports the window size last seen by Layout.
func (g *Game) outsideSize() (float64, float64) {
	return float64(g.outsideW), float64(g.outsideH)
}

// timestamp returns milliseconds since the game started.
func (g *Game) timestamp(now time.Time) float64 {
	return float64(now.Sub(g.origin)) / float64(time.Millisecond)
}

// Update handles input, fires a due resize, and runs scheduled frames.
func (g *Game) Update() error {
	if g.handleControls() {
		return ebiten.Termination
	}
	now := time.Now()
	g.viewport.Poll(now)
	g.frames.Flush(g.timestamp(now))
	if *debugFlag {
		g.logDebug(now)
	}
	return nil
}

// logDebug reports regenerations and periodic loop statistics.
func (g *Game) logDebug(now time.Time) {
	if epoch := g.scene.Epoch(); epoch != g.lastEpoch {
		g.lastEpoch = epoch
		log.Printf("Regenerated grid (epoch %d): %s", epoch, describeGrid(g.scene))
	}
	if now.Sub(g.lastDebugLog) < debugLogInterval {
		return
	}
	g.lastDebugLog = now
	log.Printf("FPS %.1f TPS %.1f paused=%t dark=%t", ebiten.ActualFPS(), ebiten.ActualTPS(), g.scene.Paused(), g.theme.Dark())
}

// Close releases the scene and its displacement backend.
func (g *Game) Close() {
	g.scene.Close()
}
