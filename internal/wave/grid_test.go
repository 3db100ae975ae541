package wave

import (
	"math"
	"testing"
)

func TestNewGridStandard(t *testing.T) {
	s := DefaultSettings()
	g := NewGrid(1024, 768, s.Standard)

	if len(g.Lines) != 17 {
		t.Fatalf("Expected 17 lines, got %d", len(g.Lines))
	}
	if g.PointsPerLine() != 6 {
		t.Fatalf("Expected 6 points per line, got %d", g.PointsPerLine())
	}
	if g.GapX != 64 {
		t.Errorf("Expected gapX 64, got %f", g.GapX)
	}
	for i, line := range g.Lines {
		if len(line) != 6 {
			t.Fatalf("Line %d: expected 6 points, got %d", i, len(line))
		}
		for j, pt := range line {
			if pt.BaseX != float64(i)*g.GapX {
				t.Errorf("Line %d point %d: baseX %f", i, j, pt.BaseX)
			}
			if pt.OffsetX != 0 || pt.OffsetY != 0 {
				t.Errorf("Line %d point %d: expected zero offsets", i, j)
			}
		}
	}
	last := g.Lines[len(g.Lines)-1]
	if math.Abs(last[0].BaseX-1024) > 1e-9 {
		t.Errorf("Expected last line at x=1024, got %f", last[0].BaseX)
	}
	if math.Abs(last[len(last)-1].BaseY-768) > 1e-9 {
		t.Errorf("Expected last point at y=768, got %f", last[len(last)-1].BaseY)
	}
}

func TestNewGridCompact(t *testing.T) {
	s := DefaultSettings()
	g := NewGrid(400, 800, s.Compact)
	if len(g.Lines) != 10 || g.PointsPerLine() != 10 {
		t.Fatalf("Expected 10x10 grid, got %dx%d", len(g.Lines), g.PointsPerLine())
	}
}

func TestGridCountMinimum(t *testing.T) {
	p := DefaultSettings().Standard
	tests := []struct {
		name          string
		width, height float64
	}{
		{"tiny", 30, 50},
		{"zero", 0, 0},
		{"negative", -10, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := LineCount(tt.width, p); n != 2 {
				t.Errorf("LineCount(%v) = %d, want 2", tt.width, n)
			}
			if n := PointsPerLine(tt.height, p); n != 2 {
				t.Errorf("PointsPerLine(%v) = %d, want 2", tt.height, n)
			}
		})
	}
	if n := LineCount(100, Profile{}); n != 2 {
		t.Errorf("Zero gap: expected 2 lines, got %d", n)
	}
}

func TestNewGridDeterministic(t *testing.T) {
	p := DefaultSettings().Standard
	a := NewGrid(1300, 900, p)
	b := NewGrid(1300, 900, p)
	if len(a.Lines) != len(b.Lines) {
		t.Fatalf("Line counts differ: %d vs %d", len(a.Lines), len(b.Lines))
	}
	for i := range a.Lines {
		for j := range a.Lines[i] {
			if a.Lines[i][j] != b.Lines[i][j] {
				t.Fatalf("Point %d/%d differs", i, j)
			}
		}
	}
}

func TestCPUDisplacer(t *testing.T) {
	p := DefaultSettings().Standard
	g := NewGrid(1024, 768, p)
	if err := (CPUDisplacer{}).Displace(g, 100, p.Amplitude); err != nil {
		t.Fatalf("Displace failed: %v", err)
	}

	pt := g.Lines[1][1]
	wantY := math.Cos(64*0.01+100*0.0001) * 15
	wantX := math.Sin((pt.BaseY+wantY)*0.008+100*0.00008) * 64
	if math.Abs(pt.OffsetY-wantY) > 1e-12 {
		t.Errorf("offsetY = %f, want %f", pt.OffsetY, wantY)
	}
	if math.Abs(pt.OffsetX-wantX) > 1e-12 {
		t.Errorf("offsetX = %f, want %f", pt.OffsetX, wantX)
	}

	for i, line := range g.Lines {
		first, last := line[0], line[len(line)-1]
		if first.OffsetX != 0 || first.OffsetY != 0 || last.OffsetX != 0 || last.OffsetY != 0 {
			t.Errorf("Line %d: endpoints not pinned", i)
		}
		for j, pt := range line {
			if math.Abs(pt.OffsetY) > p.Amplitude {
				t.Errorf("Line %d point %d: |offsetY| %f exceeds amplitude", i, j, pt.OffsetY)
			}
			if math.Abs(pt.OffsetX) > g.GapX {
				t.Errorf("Line %d point %d: |offsetX| %f exceeds gapX", i, j, pt.OffsetX)
			}
		}
	}
}
