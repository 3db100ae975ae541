package wave

import (
	"bufio"
	"encoding/xml"
	"io"
	"strconv"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVGSurface is an in-memory vector surface that renders to a standalone SVG
// document.
type SVGSurface struct {
	width, height float64
	paths         []PathElement
	revision      int
}

// NewSVGSurface returns an empty surface.
func NewSVGSurface() *SVGSurface {
	return &SVGSurface{}
}

// SetSize stores the declared width and height attributes.
func (s *SVGSurface) SetSize(width, height float64) {
	s.width, s.height = width, height
}

// ReplacePaths swaps the full path set.
func (s *SVGSurface) ReplacePaths(paths []PathElement) {
	s.paths = paths
	s.revision++
}

// Size returns the declared size.
func (s *SVGSurface) Size() (float64, float64) { return s.width, s.height }

// Paths returns the current path set.
func (s *SVGSurface) Paths() []PathElement { return s.paths }

// Revision counts ReplacePaths calls.
func (s *SVGSurface) Revision() int { return s.revision }

// WidthAttr formats the width with two decimals.
func (s *SVGSurface) WidthAttr() string {
	return strconv.FormatFloat(s.width, 'f', 2, 64)
}

// HeightAttr formats the height with two decimals.
func (s *SVGSurface) HeightAttr() string {
	return strconv.FormatFloat(s.height, 'f', 2, 64)
}

// WriteTo writes the surface as an SVG document.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	return WriteSVG(w, s.WidthAttr(), s.HeightAttr(), s.paths)
}

// WriteSVG renders a path set as an SVG document with the given size
// attributes.
func WriteSVG(w io.Writer, width, height string, paths []PathElement) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	bw.WriteString(`<svg xmlns="` + svgNamespace + `" width="` + width + `" height="` + height + `">` + "\n")
	for _, p := range paths {
		bw.WriteString(`  <path fill="`)
		xml.EscapeText(bw, []byte(p.Fill()))
		bw.WriteString(`" stroke="`)
		xml.EscapeText(bw, []byte(p.Stroke.Color()))
		bw.WriteString(`" stroke-width="`)
		xml.EscapeText(bw, []byte(p.Stroke.WidthAttr()))
		bw.WriteString(`" d="`)
		bw.WriteString(p.D())
		bw.WriteString(`"/>` + "\n")
	}
	bw.WriteString("</svg>\n")
	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
