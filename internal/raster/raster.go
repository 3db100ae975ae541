// Package raster turns a drawn wave frame into a bitmap.
package raster

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"

	"github.com/ENyerere/Personal-website/internal/wave"
)

// Frame is an immutable copy of one drawn frame.
type Frame struct {
	Width, Height float64
	Dark          bool
	Paths         []wave.PathElement
}

// pixelSize rounds a surface extent up to whole pixels, at least one.
func pixelSize(v float64) int {
	n := int(math.Ceil(v))
	if n < 1 {
		return 1
	}
	return n
}

// Render strokes every path of f onto a themed background.
func Render(f Frame) image.Image {
	return draw(f).Image()
}

func draw(f Frame) *gg.Context {
	dc := gg.NewContext(pixelSize(f.Width), pixelSize(f.Height))
	dc.SetColor(wave.Background(f.Dark))
	dc.Clear()
	for _, p := range f.Paths {
		dc.SetColor(p.Stroke.NRGBA())
		dc.SetLineWidth(p.Stroke.Width)
		dc.MoveTo(p.Path.Start.X, p.Path.Start.Y)
		for _, seg := range p.Path.Segments {
			dc.QuadraticTo(seg.Ctrl.X, seg.Ctrl.Y, seg.End.X, seg.End.Y)
		}
		dc.Stroke()
	}
	return dc
}

// EncodePNG renders f and writes it as PNG.
func EncodePNG(w io.Writer, f Frame) error {
	return draw(f).EncodePNG(w)
}

// SavePNG renders f into a PNG file at path.
func SavePNG(path string, f Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
