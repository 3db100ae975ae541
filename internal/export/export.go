// Package export renders the wave scene headlessly into numbered SVG or PNG
// frames.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ENyerere/Personal-website/internal/raster"
	"github.com/ENyerere/Personal-website/internal/wave"
)

// Options configures one export run.
type Options struct {
	Dir       string
	Frames    int
	Format    string
	Workers   int
	Width     float64
	Height    float64
	Dark      bool
	FrameStep float64 // milliseconds between scheduler flushes
	Settings  wave.Settings
	Displacer wave.Displacer
}

// Result lists the written files and the grid they were drawn from.
type Result struct {
	Files  []string
	Lines  int
	Points int
}

// recorder is an SVG surface that also keeps every drawn path set.
type recorder struct {
	*wave.SVGSurface
	frames [][]wave.PathElement
}

func (r *recorder) ReplacePaths(paths []wave.PathElement) {
	r.SVGSurface.ReplacePaths(paths)
	r.frames = append(r.frames, paths)
}

// Run drives the scene with a synthetic clock until opts.Frames frames have
// been drawn, then writes them with at most opts.Workers files in flight.
func Run(ctx context.Context, opts Options) (Result, error) {
	format := strings.ToLower(opts.Format)
	if format != "svg" && format != "png" {
		return Result{}, fmt.Errorf("unsupported export format %q (want svg or png)", opts.Format)
	}
	if opts.Frames <= 0 {
		return Result{}, fmt.Errorf("frame count must be positive, got %d", opts.Frames)
	}
	if opts.FrameStep <= 0 {
		opts.FrameStep = 1000.0 / 60
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating export directory: %w", err)
	}

	rec := &recorder{SVGSurface: wave.NewSVGSurface()}
	size := func() (float64, float64) { return opts.Width, opts.Height }
	vp := wave.NewViewport(size, rec, opts.Settings)
	queue := wave.NewFrameQueue()
	scene := wave.NewScene(vp, rec, wave.NewTheme(opts.Dark), queue, opts.Settings, opts.Displacer)
	defer scene.Close()
	scene.Generate()

	// Each drawn frame needs at most ceil(interval/step)+1 flushes.
	maxFlushes := opts.Frames * (int(opts.Settings.FrameInterval()/opts.FrameStep) + 2)
	ts := 0.0
	for i := 0; len(rec.frames) < opts.Frames && i < maxFlushes; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		ts += opts.FrameStep
		queue.Flush(ts)
	}

	res := Result{Lines: len(scene.Grid().Lines), Points: scene.Grid().PointsPerLine()}
	width, height := rec.Size()
	res.Files = make([]string, len(rec.frames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, paths := range rec.frames {
		path := filepath.Join(opts.Dir, fmt.Sprintf("frame-%04d.%s", i, format))
		res.Files[i] = path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if format == "png" {
				return raster.SavePNG(path, raster.Frame{Width: width, Height: height, Dark: opts.Dark, Paths: paths})
			}
			var buf bytes.Buffer
			if _, err := wave.WriteSVG(&buf, rec.WidthAttr(), rec.HeightAttr(), paths); err != nil {
				return err
			}
			return os.WriteFile(path, buf.Bytes(), 0644)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("writing frames: %w", err)
	}
	return res, nil
}
