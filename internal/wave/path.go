package wave

import (
	"strconv"
	"strings"
)

// Point is an absolute surface coordinate.
type Point struct {
	X, Y float64
}

// QuadSegment is one quadratic curve from the previous end point to End.
type QuadSegment struct {
	Ctrl Point
	End  Point
}

// Path is a line serialized as a start point followed by quadratic curves.
type Path struct {
	Start    Point
	Segments []QuadSegment
}

// Data renders the path in SVG path syntax: "M x,y" then " Q cx,cy x,y" per
// segment.
func (p Path) Data() string {
	var b strings.Builder
	b.Grow(16 + len(p.Segments)*40)
	b.WriteString("M ")
	writePoint(&b, p.Start)
	for _, seg := range p.Segments {
		b.WriteString(" Q ")
		writePoint(&b, seg.Ctrl)
		b.WriteByte(' ')
		writePoint(&b, seg.End)
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(formatCoord(pt.X))
	b.WriteByte(',')
	b.WriteString(formatCoord(pt.Y))
}

// formatCoord prints the shortest decimal form that round-trips.
func formatCoord(v float64) string {
	if v == 0 {
		// folds -0 into 0
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// linePath builds the drawable path for one line of control points. Each
// control coordinate is the midpoint of the previous and current absolute
// positions.
func linePath(line Line) Path {
	if len(line) == 0 {
		return Path{}
	}
	p := Path{
		Start:    line[0].Position(),
		Segments: make([]QuadSegment, 0, len(line)-1),
	}
	for i := 1; i < len(line); i++ {
		prev := line[i-1].Position()
		cur := line[i].Position()
		p.Segments = append(p.Segments, QuadSegment{
			Ctrl: Point{X: (prev.X + cur.X) / 2, Y: (prev.Y + cur.Y) / 2},
			End:  cur,
		})
	}
	return p
}
