package wave

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile holds the wave parameters used for one device class.
type Profile struct {
	Gap         float64 `yaml:"gap"`
	Divisor     float64 `yaml:"divisor"`
	Amplitude   float64 `yaml:"amplitude"`
	Opacity     float64 `yaml:"opacity"`
	StrokeWidth float64 `yaml:"stroke_width"`
}

// Settings configures the viewport breakpoint, loop pacing, and the two
// device profiles.
type Settings struct {
	Breakpoint       float64 `yaml:"breakpoint"`
	FrameRate        float64 `yaml:"frame_rate"`
	ResizeDebounceMS int     `yaml:"resize_debounce_ms"`
	Compact          Profile `yaml:"compact"`
	Standard         Profile `yaml:"standard"`
}

// DefaultSettings returns the built-in parameter policy.
func DefaultSettings() Settings {
	return Settings{
		Breakpoint:       compactBreakpoint,
		FrameRate:        defaultFrameRate,
		ResizeDebounceMS: int(resizeDebounce / time.Millisecond),
		Compact: Profile{
			Gap:         compactGap,
			Divisor:     compactDivisor,
			Amplitude:   compactAmplitude,
			Opacity:     compactOpacity,
			StrokeWidth: compactStroke,
		},
		Standard: Profile{
			Gap:         standardGap,
			Divisor:     standardDivisor,
			Amplitude:   standardAmplitude,
			Opacity:     standardOpacity,
			StrokeWidth: standardStroke,
		},
	}
}

// LoadSettings reads a YAML settings file on top of the defaults. Keys that
// are absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings %q: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %q: %w", path, err)
	}
	return s, nil
}

// WriteSettings stores s as YAML at path.
func WriteSettings(s Settings, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values that would break grid generation or pacing.
func (s Settings) Validate() error {
	var errs []error
	if s.Breakpoint < 0 {
		errs = append(errs, fmt.Errorf("breakpoint must not be negative, got %g", s.Breakpoint))
	}
	if s.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate must be positive, got %g", s.FrameRate))
	}
	if s.ResizeDebounceMS < 0 {
		errs = append(errs, fmt.Errorf("resize_debounce_ms must not be negative, got %d", s.ResizeDebounceMS))
	}
	errs = append(errs, s.Compact.validate("compact"), s.Standard.validate("standard"))
	return errors.Join(errs...)
}

func (p Profile) validate(name string) error {
	var errs []error
	if p.Gap <= 0 {
		errs = append(errs, fmt.Errorf("%s.gap must be positive, got %g", name, p.Gap))
	}
	if p.Divisor <= 0 {
		errs = append(errs, fmt.Errorf("%s.divisor must be positive, got %g", name, p.Divisor))
	}
	if p.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("%s.stroke_width must be positive, got %g", name, p.StrokeWidth))
	}
	if p.Opacity < 0 || p.Opacity > 1 {
		errs = append(errs, fmt.Errorf("%s.opacity must be within [0,1], got %g", name, p.Opacity))
	}
	return errors.Join(errs...)
}

// ProfileFor selects the profile matching the device class.
func (s Settings) ProfileFor(compact bool) Profile {
	if compact {
		return s.Compact
	}
	return s.Standard
}

// FrameInterval returns the minimum time in milliseconds between two
// displacement passes.
func (s Settings) FrameInterval() float64 {
	if s.FrameRate <= 0 {
		return 1000.0 / defaultFrameRate
	}
	return 1000.0 / s.FrameRate
}

// Debounce returns the resize coalescing window.
func (s Settings) Debounce() time.Duration {
	return time.Duration(s.ResizeDebounceMS) * time.Millisecond
}
