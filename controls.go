package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ENyerere/Personal-website/internal/raster"
)

// handleControls processes the preview hotkeys and reports whether the user
// asked to quit.
func (g *Game) handleControls() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.SetPaused(!g.scene.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.theme.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveSnapshot(time.Now())
	}
	return false
}

// saveSnapshot rasterizes the frame currently on the surface to a PNG in the
// working directory.
func (g *Game) saveSnapshot(now time.Time) {
	path := now.Format(snapshotPattern)
	frame := raster.Frame{
		Width:  g.surface.width,
		Height: g.surface.height,
		Dark:   g.theme.Dark(),
		Paths:  g.surface.paths,
	}
	if err := raster.SavePNG(path, frame); err != nil {
		log.Printf("Snapshot failed: %v", err)
		return
	}
	log.Printf("Snapshot saved to %s", path)
}
