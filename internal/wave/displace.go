package wave

import "math"

// Displacer computes per-frame offsets for every interior point of a grid.
type Displacer interface {
	Displace(g *Grid, time, amplitude float64) error
	Name() string
	Close()
}

// CPUDisplacer evaluates the displacement functions on the host.
type CPUDisplacer struct{}

// Displace applies
//
//	offsetY = cos(baseX*0.01 + t*0.0001) * amplitude
//	offsetX = sin((baseY+offsetY)*0.008 + t*0.00008) * gapX
//
// to interior points and zeroes both endpoints of each line.
func (CPUDisplacer) Displace(g *Grid, time, amplitude float64) error {
	if g == nil {
		return nil
	}
	phaseY := time * waveSpeedY
	phaseX := time * waveSpeedX
	for _, line := range g.Lines {
		last := len(line) - 1
		for j := range line {
			pt := &line[j]
			if j == 0 || j == last {
				pt.OffsetX, pt.OffsetY = 0, 0
				continue
			}
			pt.OffsetY = math.Cos(pt.BaseX*waveFreqX+phaseY) * amplitude
			pt.OffsetX = math.Sin((pt.BaseY+pt.OffsetY)*waveFreqY+phaseX) * g.GapX
		}
	}
	return nil
}

// Name identifies the backend in logs.
func (CPUDisplacer) Name() string { return "cpu" }

// Close is a no-op.
func (CPUDisplacer) Close() {}
