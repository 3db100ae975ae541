package wave

import (
	"math"
	"testing"
)

type recordSurface struct {
	width, height float64
	draws         int
	paths         []PathElement
}

func (s *recordSurface) SetSize(width, height float64) { s.width, s.height = width, height }

func (s *recordSurface) ReplacePaths(paths []PathElement) {
	s.paths = paths
	s.draws++
}

type sceneFixture struct {
	scene   *Scene
	surface *recordSurface
	queue   *FrameQueue
	theme   *Theme
	vp      *Viewport
}

func newSceneFixture(width, height float64) *sceneFixture {
	f := &sceneFixture{surface: &recordSurface{}, queue: NewFrameQueue(), theme: NewTheme(false)}
	settings := DefaultSettings()
	f.vp = NewViewport(func() (float64, float64) { return width, height }, f.surface, settings)
	f.scene = NewScene(f.vp, f.surface, f.theme, f.queue, settings, nil)
	return f
}

func TestSceneGenerateSchedulesOneFrame(t *testing.T) {
	f := newSceneFixture(1024, 768)
	f.scene.Generate()
	f.scene.Generate()

	if f.queue.Len() != 1 {
		t.Fatalf("Expected exactly one scheduled frame, got %d", f.queue.Len())
	}
	if !f.scene.Running() {
		t.Error("Expected the loop to be running")
	}
	if f.scene.Epoch() != 2 {
		t.Errorf("Expected epoch 2, got %d", f.scene.Epoch())
	}
	if g := f.scene.Grid(); len(g.Lines) != 17 || g.PointsPerLine() != 6 {
		t.Errorf("Unexpected grid %dx%d", len(g.Lines), g.PointsPerLine())
	}
}

func TestSceneCompactProfile(t *testing.T) {
	f := newSceneFixture(400, 800)
	f.scene.Generate()
	if !f.scene.Compact() || f.scene.Profile().Amplitude != 25 {
		t.Fatalf("Expected compact profile, got %+v", f.scene.Profile())
	}
	f.queue.Flush(100)
	for i, line := range f.scene.Grid().Lines {
		for j, pt := range line {
			if math.Abs(pt.OffsetY) > 25 {
				t.Errorf("Line %d point %d: |offsetY| %f exceeds 25", i, j, pt.OffsetY)
			}
		}
	}
}

func TestSceneTickFrameCap(t *testing.T) {
	f := newSceneFixture(1024, 768)
	f.scene.Generate()

	f.queue.Flush(100)
	if f.surface.draws != 1 {
		t.Fatalf("Expected first draw at 100ms, got %d draws", f.surface.draws)
	}
	f.queue.Flush(110)
	if f.surface.draws != 1 {
		t.Errorf("Drew again 10ms later: %d draws", f.surface.draws)
	}
	f.queue.Flush(134)
	if f.surface.draws != 2 {
		t.Errorf("Expected second draw at 134ms, got %d draws", f.surface.draws)
	}
	if f.scene.LastTime() != 134 {
		t.Errorf("Expected last time 134, got %f", f.scene.LastTime())
	}
	if f.queue.Len() != 1 {
		t.Errorf("Expected the loop to reschedule, %d pending", f.queue.Len())
	}
}

func TestScenePinsEndpoints(t *testing.T) {
	f := newSceneFixture(1024, 768)
	f.scene.Generate()
	f.queue.Flush(5000)

	for i, line := range f.scene.Grid().Lines {
		first := line[0].Position()
		last := line[len(line)-1].Position()
		if first.X != line[0].BaseX || first.Y != 0 {
			t.Errorf("Line %d: first point moved to %+v", i, first)
		}
		if last.X != line[0].BaseX || last.Y != line[len(line)-1].BaseY {
			t.Errorf("Line %d: last point moved to %+v", i, last)
		}
	}
	if len(f.surface.paths) != 17 {
		t.Errorf("Expected 17 paths, got %d", len(f.surface.paths))
	}
}

func TestScenePauseKeepsLoop(t *testing.T) {
	f := newSceneFixture(1024, 768)
	f.scene.Generate()
	f.queue.Flush(100)
	before := f.scene.Grid().Lines[3][2]

	f.scene.SetPaused(true)
	f.queue.Flush(500)
	f.queue.Flush(900)
	if f.surface.draws != 1 {
		t.Errorf("Drew while paused: %d draws", f.surface.draws)
	}
	if got := f.scene.Grid().Lines[3][2]; got != before {
		t.Errorf("Offsets changed while paused: %+v -> %+v", before, got)
	}
	if f.queue.Len() != 1 {
		t.Errorf("Expected the frame chain to survive the pause, %d pending", f.queue.Len())
	}

	f.scene.SetPaused(false)
	f.queue.Flush(1000)
	if f.surface.draws != 2 {
		t.Errorf("Expected a draw after resuming, got %d", f.surface.draws)
	}
}

func TestSceneThemeRestyles(t *testing.T) {
	f := newSceneFixture(1024, 768)
	f.scene.Generate()
	f.queue.Flush(100)

	f.theme.Toggle()
	if f.surface.draws != 2 {
		t.Fatalf("Expected an immediate redraw, got %d draws", f.surface.draws)
	}
	if c := f.surface.paths[0].Stroke.Color(); c != "rgba(255,255,255,0.15)" {
		t.Errorf("Unexpected dark stroke %q", c)
	}
}

func TestSceneRegeneratesOnResize(t *testing.T) {
	f := newSceneFixture(1024, 768)
	f.scene.Generate()
	f.vp.OnResize()
	if f.scene.Epoch() != 2 {
		t.Errorf("Expected regeneration on resize, epoch %d", f.scene.Epoch())
	}
	if f.queue.Len() != 1 {
		t.Errorf("Expected one scheduled frame, got %d", f.queue.Len())
	}
}

func TestSceneWithoutSurface(t *testing.T) {
	queue := NewFrameQueue()
	vp := NewViewport(func() (float64, float64) { return 800, 600 }, nil, DefaultSettings())
	s := NewScene(vp, nil, NewTheme(false), queue, DefaultSettings(), nil)
	s.Generate()
	if s.Grid() != nil || queue.Len() != 0 {
		t.Errorf("Expected no grid and no frames without a surface")
	}
}

func TestSceneStop(t *testing.T) {
	f := newSceneFixture(1024, 768)
	f.scene.Generate()
	f.scene.Stop()
	if f.scene.Running() || f.queue.Len() != 0 {
		t.Errorf("Expected the loop to stop, %d pending", f.queue.Len())
	}
	f.scene.Close()
	f.theme.Toggle()
	if f.surface.draws != 0 {
		t.Errorf("Closed scene still redraws on theme change")
	}
}
