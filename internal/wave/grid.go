package wave

import "math"

// ControlPoint is a grid point with a fixed base position and a per-frame
// displacement.
type ControlPoint struct {
	BaseX, BaseY     float64
	OffsetX, OffsetY float64
}

// Position returns the absolute coordinate of the point.
func (p ControlPoint) Position() Point {
	return Point{X: p.BaseX + p.OffsetX, Y: p.BaseY + p.OffsetY}
}

// Line is one grid column, ordered top to bottom.
type Line []ControlPoint

// Grid is the full set of lines for one generation epoch.
type Grid struct {
	Lines []Line
	GapX  float64
	GapY  float64
}

// gridCount floors extent/step and clamps the result to at least two so a
// line always holds both pinned endpoints.
func gridCount(extent, step float64) int {
	if step <= 0 || extent <= 0 {
		return minGridCount
	}
	n := int(math.Floor(extent / step))
	if n < minGridCount {
		return minGridCount
	}
	return n
}

// LineCount returns the number of lines for a surface width.
func LineCount(width float64, p Profile) int {
	return gridCount(width, p.Gap)
}

// PointsPerLine returns the number of points per line for a surface height.
func PointsPerLine(height float64, p Profile) int {
	return gridCount(height, p.Divisor)
}

// NewGrid generates a grid covering width x height with zero offsets.
func NewGrid(width, height float64, p Profile) *Grid {
	lines := LineCount(width, p)
	points := PointsPerLine(height, p)
	g := &Grid{
		Lines: make([]Line, lines),
		GapX:  width / float64(lines-1),
		GapY:  height / float64(points-1),
	}
	for i := range g.Lines {
		x := float64(i) * g.GapX
		line := make(Line, points)
		for j := range line {
			line[j] = ControlPoint{BaseX: x, BaseY: float64(j) * g.GapY}
		}
		g.Lines[i] = line
	}
	return g
}

// PointsPerLine reports the constant line length of the grid.
func (g *Grid) PointsPerLine() int {
	if g == nil || len(g.Lines) == 0 {
		return 0
	}
	return len(g.Lines[0])
}

// pinEdges zeroes the offsets of the first and last point of every line.
func (g *Grid) pinEdges() {
	for _, line := range g.Lines {
		if len(line) == 0 {
			continue
		}
		line[0].OffsetX, line[0].OffsetY = 0, 0
		last := len(line) - 1
		line[last].OffsetX, line[last].OffsetY = 0, 0
	}
}
