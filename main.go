package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ENyerere/Personal-website/internal/export"
	"github.com/ENyerere/Personal-website/internal/wave"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run executes one preview or export session. Deferred cleanup, including
// the CPU profile, completes before main reports an error.
func run() error {
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return fmt.Errorf("CPU profiling: %w", err)
		}
		defer stop()
	}

	settings := wave.DefaultSettings()
	if *configFlag != "" {
		s, err := wave.LoadSettings(*configFlag)
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		settings = s
		log.Printf("Loaded settings from %s", *configFlag)
	}
	if *writeConfigFlag != "" {
		if err := wave.WriteSettings(settings, *writeConfigFlag); err != nil {
			return fmt.Errorf("writing settings: %w", err)
		}
		log.Printf("Wrote settings to %s", *writeConfigFlag)
		return nil
	}

	isDark, err := resolveTheme(*themeFlag)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	displacer := selectDisplacer()

	if *exportDirFlag != "" {
		return runExport(settings, isDark, displacer)
	}

	g := newGame(settings, isDark, displacer)
	defer g.Close()

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(engineTPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// selectDisplacer returns the OpenCL backend when requested and available.
// A nil result makes the scene use the CPU path.
func selectDisplacer() wave.Displacer {
	if !*openCLFlag {
		return nil
	}
	d, err := wave.NewOpenCLDisplacer()
	if err != nil {
		log.Printf("OpenCL unavailable, using cpu displacement: %v", err)
		return nil
	}
	log.Printf("Using %s displacement", d.Name())
	return d
}

// runExport renders frames headlessly and stops on the first write error or
// an interrupt.
func runExport(settings wave.Settings, isDark bool, displacer wave.Displacer) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	res, err := export.Run(ctx, export.Options{
		Dir:       *exportDirFlag,
		Frames:    *exportFramesFlag,
		Format:    *exportFormatFlag,
		Workers:   *exportWorkersFlag,
		Width:     float64(*widthFlag),
		Height:    float64(*heightFlag),
		Dark:      isDark,
		FrameStep: exportFrameStep,
		Settings:  settings,
		Displacer: displacer,
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Printf("Exported %d frames (%d lines x %d points) to %s", len(res.Files), res.Lines, res.Points, *exportDirFlag)
	return nil
}
