package wave

import (
	"image/color"
	"strconv"
)

// Sizer receives the explicit size of a drawable surface.
type Sizer interface {
	SetSize(width, height float64)
}

// Surface is a vector canvas whose contents are replaced as a whole.
type Surface interface {
	Sizer
	ReplacePaths(paths []PathElement)
}

// StrokeStyle describes how a path is stroked.
type StrokeStyle struct {
	Dark    bool
	Opacity float64
	Width   float64
}

// strokeFor picks the stroke for the current theme and device profile.
func strokeFor(dark bool, p Profile) StrokeStyle {
	return StrokeStyle{Dark: dark, Opacity: p.Opacity, Width: p.StrokeWidth}
}

// Color returns the stroke as a CSS rgba() string.
func (s StrokeStyle) Color() string {
	channel := "0,0,0"
	if s.Dark {
		channel = "255,255,255"
	}
	return "rgba(" + channel + "," + strconv.FormatFloat(s.Opacity, 'f', -1, 64) + ")"
}

// WidthAttr returns the stroke width with a px unit.
func (s StrokeStyle) WidthAttr() string {
	return strconv.FormatFloat(s.Width, 'f', -1, 64) + "px"
}

// NRGBA returns the stroke color as a non-premultiplied color.
func (s StrokeStyle) NRGBA() color.NRGBA {
	a := s.Opacity
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c := color.NRGBA{A: uint8(a*255 + 0.5)}
	if s.Dark {
		c.R, c.G, c.B = 255, 255, 255
	}
	return c
}

// PathElement is one drawable child of a surface. Fill is always "none".
type PathElement struct {
	Path   Path
	Stroke StrokeStyle
}

// Fill returns the fill attribute of the element.
func (PathElement) Fill() string { return "none" }

// D returns the path data attribute.
func (e PathElement) D() string { return e.Path.Data() }

// Background returns the page color behind the wave for the given theme.
func Background(dark bool) color.NRGBA {
	if dark {
		return color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
