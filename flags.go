package main

import (
	"flag"
	"runtime"
)

// Command-line flags that control the preview window, the wave settings
// source, and the headless exporter.
var (
	// configFlag points at an optional YAML settings file.
	configFlag = flag.String("config", "", "YAML file overriding breakpoint, frame rate, debounce and device profiles")

	// writeConfigFlag dumps the effective settings and exits.
	writeConfigFlag = flag.String("write-config", "", "write the effective settings to this YAML file and exit")

	widthFlag  = flag.Int("width", defaultWindowW, "initial surface width in pixels")
	heightFlag = flag.Int("height", defaultWindowH, "initial surface height in pixels")

	// themeFlag selects the starting theme; auto asks the OS.
	themeFlag = flag.String("theme", "auto", "starting theme: auto, dark or light")

	// pausedFlag starts the animation suspended.
	pausedFlag = flag.Bool("paused", false, "start with the animation paused")

	// debugFlag enables the FPS and grid overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, grid and backend overlay")

	// openCLFlag requests the OpenCL displacement backend.
	openCLFlag = flag.Bool("opencl", false, "compute displacement with OpenCL (build with -tags opencl)")

	// exportDirFlag switches to headless mode and writes frames there.
	exportDirFlag = flag.String("export-dir", "", "render frames headlessly into this directory instead of opening a window")

	exportFramesFlag  = flag.Int("export-frames", defaultExportRuns, "number of drawn frames to export")
	exportFormatFlag  = flag.String("export-format", "svg", "export format: svg or png")
	exportWorkersFlag = flag.Int("export-workers", runtime.NumCPU(), "parallel writers used by the exporter")

	// cpuProfileFlag captures a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
