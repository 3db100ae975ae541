package main

import "time"

// Desktop preview and exporter configuration. Wave parameters live in the
// wave package settings; these values only shape the host window and the
// headless export run.
const (
	defaultWindowW    = 1280
	defaultWindowH    = 720
	windowTitle       = "Wave Background"
	engineTPS         = 60
	exportFrameStep   = 1000.0 / engineTPS
	defaultExportRuns = 90
	snapshotPattern   = "wave-2006-01-02_15-04-05.png"
	debugLogInterval  = 5 * time.Second
)
