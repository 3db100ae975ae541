package raster

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/ENyerere/Personal-website/internal/wave"
)

func horizontalFrame(dark bool) Frame {
	return Frame{
		Width:  100.4,
		Height: 50,
		Dark:   dark,
		Paths: []wave.PathElement{{
			Path: wave.Path{
				Start:    wave.Point{X: 0, Y: 25},
				Segments: []wave.QuadSegment{{Ctrl: wave.Point{X: 50, Y: 25}, End: wave.Point{X: 100, Y: 25}}},
			},
			Stroke: wave.StrokeStyle{Dark: dark, Opacity: 1, Width: 4},
		}},
	}
}

func TestRenderSizeAndBackground(t *testing.T) {
	img := Render(horizontalFrame(true))
	b := img.Bounds()
	if b.Dx() != 101 || b.Dy() != 50 {
		t.Fatalf("Expected 101x50 image, got %dx%d", b.Dx(), b.Dy())
	}
	r, _, _, _ := img.At(2, 2).RGBA()
	if r>>8 != 0x1a {
		t.Errorf("Expected dark background, got red %#x", r>>8)
	}
	r, _, _, _ = img.At(50, 25).RGBA()
	if r>>8 < 0xc0 {
		t.Errorf("Expected a light stroke at the center, got red %#x", r>>8)
	}
}

func TestRenderEmptySurface(t *testing.T) {
	img := Render(Frame{})
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("Expected 1x1 image, got %v", b)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, horizontalFrame(false)); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 101 || b.Dy() != 50 {
		t.Errorf("Unexpected bounds %v", b)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := SavePNG(path, horizontalFrame(false)); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}
