package wave

import "time"

// Tuning constants for grid generation, displacement, and loop pacing. The
// per-device profiles below start from these and may be overridden by a
// settings file.
const (
	compactBreakpoint = 768
	defaultFrameRate  = 30
	resizeDebounce    = 150 * time.Millisecond

	compactGap       = 40
	compactDivisor   = 80
	compactAmplitude = 25
	compactOpacity   = 0.25
	compactStroke    = 1.5

	standardGap       = 60
	standardDivisor   = 120
	standardAmplitude = 15
	standardOpacity   = 0.15
	standardStroke    = 1

	// Displacement frequencies: spatial terms are per pixel, temporal terms
	// are per millisecond.
	waveFreqX  = 0.01
	waveSpeedY = 0.0001
	waveFreqY  = 0.008
	waveSpeedX = 0.00008

	minGridCount = 2
)
