package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ENyerere/Personal-website/internal/wave"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is the source texture for stroked triangles.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenSurface keeps the latest path set and strokes it on every Draw.
type screenSurface struct {
	width, height float64
	paths         []wave.PathElement

	vertices []ebiten.Vertex
	indices  []uint16
}

func newScreenSurface() *screenSurface {
	return &screenSurface{}
}

// SetSize records the logical size reported back to Ebiten by Layout.
func (s *screenSurface) SetSize(width, height float64) {
	s.width, s.height = width, height
}

// ReplacePaths swaps the full path set; the next Draw shows it.
func (s *screenSurface) ReplacePaths(paths []wave.PathElement) {
	s.paths = paths
}

// layoutSize returns the surface size in whole pixels.
func (s *screenSurface) layoutSize() (int, int) {
	return int(math.Ceil(s.width)), int(math.Ceil(s.height))
}

// draw strokes each path as antialiased triangles.
func (s *screenSurface) draw(screen *ebiten.Image) {
	for _, el := range s.paths {
		var p vector.Path
		p.MoveTo(float32(el.Path.Start.X), float32(el.Path.Start.Y))
		for _, seg := range el.Path.Segments {
			p.QuadTo(float32(seg.Ctrl.X), float32(seg.Ctrl.Y), float32(seg.End.X), float32(seg.End.Y))
		}
		op := &vector.StrokeOptions{
			Width:    float32(el.Stroke.Width),
			LineJoin: vector.LineJoinRound,
			LineCap:  vector.LineCapRound,
		}
		s.vertices, s.indices = p.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
		c := el.Stroke.NRGBA()
		r, gr, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
		for i := range s.vertices {
			s.vertices[i].SrcX = 1
			s.vertices[i].SrcY = 1
			s.vertices[i].ColorR = r
			s.vertices[i].ColorG = gr
			s.vertices[i].ColorB = b
			s.vertices[i].ColorA = a
		}
		screen.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

// Draw paints the themed background, the wave paths, and the optional
// debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(wave.Background(g.theme.Dark()))
	g.surface.draw(screen)

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nGrid: %s\nBackend: %s\nResize pending: %t\nPaused: %t (P)  Theme: %s (T)  Snapshot (S)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), describeGrid(g.scene), g.scene.Backend(),
			g.viewport.ResizePending(), g.scene.Paused(), themeName(g.theme.Dark()))
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout records the outside size as the environment's resize signal and
// keeps the logical screen at the size the viewport last applied.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.viewport.Signal(time.Now())
	}
	w, h := g.surface.layoutSize()
	if w <= 0 || h <= 0 {
		return outsideWidth, outsideHeight
	}
	return w, h
}

// describeGrid summarizes the current grid for logs and the overlay.
func describeGrid(s *wave.Scene) string {
	grid := s.Grid()
	if grid == nil {
		return "none"
	}
	class := "standard"
	if s.Compact() {
		class = "compact"
	}
	return fmt.Sprintf("%d lines x %d points (%s, gap %.1fx%.1f)",
		len(grid.Lines), grid.PointsPerLine(), class, grid.GapX, grid.GapY)
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
