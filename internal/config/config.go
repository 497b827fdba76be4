// Package config holds runtime configuration: global options, per-scenario
// settings with defaults matching the original presentation-page scripts, and
// validation. Scenario settings may be overridden from a TOML file.
package config

import (
	"errors"
	"strings"
)

// --- Enum types for validated string fields ---

// ExhaustPolicy controls what a source does once it runs out of frames before
// the output is complete.
type ExhaustPolicy string

const (
	// ExhaustHold freezes on the last successfully decoded frame (default).
	ExhaustHold ExhaustPolicy = "hold"
	// ExhaustLoop restarts the source from frame 0.
	ExhaustLoop ExhaustPolicy = "loop"
)

// CropPreset selects the per-source center-crop geometry.
type CropPreset string

const (
	// PresetCSGO crops CS:GO footage to 512x275 before tiling.
	PresetCSGO CropPreset = "csgo"
	// PresetRT1 crops RT-1 robot footage to 400x320 before tiling.
	PresetRT1 CropPreset = "rt1"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds the global settings shared by every subcommand. It is populated
// by [DefaultConfig] and then mutated by cobra flag bindings before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Behavior flags.
	DryRun  bool
	Verbose bool

	// Source exhaustion policy applied when a scenario does not pin its own.
	Policy ExhaustPolicy

	// Label rendering: candidate font files tried in order before falling
	// back to the embedded face.
	FontPaths []string

	// Display and logging.
	ColorMode ColorMode
	LogFile   string // Optional log file path.

	// Optional TOML scenario override file (--config).
	ScenarioFile string
}

// DefaultConfig returns a Config with defaults matching the original scripts'
// behavior, except that the source exhaustion policy is unified to "hold"
// (the scripts disagreed; see DESIGN.md).
func DefaultConfig() Config {
	return Config{
		Policy: ExhaustHold,
		FontPaths: []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
			"/Library/Fonts/Arial Bold.ttf",
			"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
			`C:\Windows\Fonts\arialbd.ttf`,
		},
		ColorMode: ColorAuto,
	}
}

// Validate checks that enum fields hold valid values.
func (c *Config) Validate() error {
	switch c.Policy {
	case ExhaustHold, ExhaustLoop:
		// valid
	default:
		return errors.New("invalid policy (use 'hold' or 'loop')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ParsePolicy validates a user-supplied policy string.
func ParsePolicy(s string) (ExhaustPolicy, error) {
	switch ExhaustPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case ExhaustHold:
		return ExhaustHold, nil
	case ExhaustLoop:
		return ExhaustLoop, nil
	}
	return "", errors.New("invalid policy (use 'hold' or 'loop')")
}
