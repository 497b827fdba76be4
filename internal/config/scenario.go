package config

// This file defines the per-scenario settings structs. Each subcommand starts
// from its Default* constructor and optionally applies overrides from a TOML
// file, replacing the hard-coded constants scattered across the original
// scripts with explicit configuration objects.

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Crop holds an exact-size centered crop in pixels.
type Crop struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// CropFor returns the crop geometry for a preset.
func CropFor(p CropPreset) Crop {
	if p == PresetCSGO {
		return Crop{Width: 512, Height: 275}
	}
	return Crop{Width: 400, Height: 320}
}

// GridScenario drives the 4x4 showcase grid with blank slots.
type GridScenario struct {
	Root   string `toml:"root"`
	Output string `toml:"output"`

	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	// Uniform tile size every source is resized to after its preset crop.
	TileWidth  int `toml:"tile_width"`
	TileHeight int `toml:"tile_height"`

	// CSGOCount caps how many CS:GO clips are placed in the middle rows.
	CSGOCount int `toml:"csgo_count"`

	Policy ExhaustPolicy `toml:"policy"`
}

// DefaultGridScenario mirrors the original combine_videos script: a 4x4 grid,
// 426x320 tiles (4:3 at height 320), four CS:GO clips, and the loop policy
// that script used.
func DefaultGridScenario() GridScenario {
	return GridScenario{
		Output:     "combined/grid_video.mp4",
		Rows:       4,
		Cols:       4,
		TileWidth:  426,
		TileHeight: 320,
		CSGOCount:  4,
		Policy:     ExhaustLoop,
	}
}

// Validate checks grid geometry.
func (s *GridScenario) Validate() error {
	if s.Root == "" {
		return errors.New("grid: root directory is required")
	}
	if s.Rows <= 0 || s.Cols <= 0 {
		return errors.New("grid: rows and cols must be positive")
	}
	if s.TileWidth <= 0 || s.TileHeight <= 0 {
		return errors.New("grid: tile size must be positive")
	}
	return validatePolicy("grid", s.Policy)
}

// AggregateScenario drives the labeled GT-row/prediction-row composite.
type AggregateScenario struct {
	Root   string `toml:"root"`
	Output string `toml:"output"`

	Preset CropPreset `toml:"preset"`

	TileWidth  int `toml:"tile_width"`
	TileHeight int `toml:"tile_height"`

	Spacing    int `toml:"spacing"`
	LabelWidth int `toml:"label_width"`
	FontSize   int `toml:"font_size"`

	GTLabel   string `toml:"gt_label"`
	PredLabel string `toml:"pred_label"`

	// PadWidescreen pads the composite to a 16:9 canvas for social embeds
	// (the RT-1 variant of the original script).
	PadWidescreen bool `toml:"pad_widescreen"`

	Policy ExhaustPolicy `toml:"policy"`
}

// DefaultAggregateScenario mirrors the aggregate_videos scripts: 50 px
// spacing, a 250 px label column, white-on-black labels.
func DefaultAggregateScenario() AggregateScenario {
	return AggregateScenario{
		Output:     "combined/all_combined.mp4",
		Preset:     PresetCSGO,
		TileWidth:  512,
		TileHeight: 275,
		Spacing:    50,
		LabelWidth: 250,
		FontSize:   30,
		GTLabel:    "GT",
		PredLabel:  "Vid2World\n(Ours)",
		Policy:     ExhaustHold,
	}
}

// Validate checks aggregate geometry.
func (s *AggregateScenario) Validate() error {
	if s.Root == "" {
		return errors.New("aggregate: root directory is required")
	}
	switch s.Preset {
	case PresetCSGO, PresetRT1:
		// valid
	default:
		return errors.New("aggregate: invalid preset (use 'csgo' or 'rt1')")
	}
	if s.TileWidth <= 0 || s.TileHeight <= 0 {
		return errors.New("aggregate: tile size must be positive")
	}
	return validatePolicy("aggregate", s.Policy)
}

// CompareScenario drives the per-directory method comparison strips.
type CompareScenario struct {
	Root      string `toml:"root"`
	OutputDir string `toml:"output_dir"`

	TileWidth  int `toml:"tile_width"`
	TileHeight int `toml:"tile_height"`

	Spacing    int `toml:"spacing"`
	BandHeight int `toml:"band_height"`
	FontSize   int `toml:"font_size"`

	Policy ExhaustPolicy `toml:"policy"`
}

// DefaultCompareScenario mirrors the compare script: 512x275 tiles, 30 px
// white spacing, 50 px label bands above and below, freeze-on-last-frame.
func DefaultCompareScenario() CompareScenario {
	return CompareScenario{
		OutputDir:  "comparison",
		TileWidth:  512,
		TileHeight: 275,
		Spacing:    30,
		BandHeight: 50,
		FontSize:   30,
		Policy:     ExhaustHold,
	}
}

// Validate checks compare geometry.
func (s *CompareScenario) Validate() error {
	if s.Root == "" {
		return errors.New("compare: root directory is required")
	}
	if s.TileWidth <= 0 || s.TileHeight <= 0 {
		return errors.New("compare: tile size must be positive")
	}
	if s.BandHeight < 0 || s.Spacing < 0 {
		return errors.New("compare: band height and spacing must not be negative")
	}
	return validatePolicy("compare", s.Policy)
}

// ActionsScenario drives the action-conditioned 2x4 grid.
type ActionsScenario struct {
	Root   string `toml:"root"`
	Output string `toml:"output"`

	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	TileWidth  int `toml:"tile_width"`
	TileHeight int `toml:"tile_height"`

	Spacing    int `toml:"spacing"`
	Padding    int `toml:"padding"`
	BandHeight int `toml:"band_height"`
	FontSize   int `toml:"font_size"`

	ConditionLabel string `toml:"condition_label"`

	Policy ExhaustPolicy `toml:"policy"`
}

// DefaultActionsScenario mirrors the move script: 512x275 tiles in a 2x4 grid
// next to a conditioned-frame tile, 20 px spacing, 30 px padding, 80 px label
// bands.
func DefaultActionsScenario() ActionsScenario {
	return ActionsScenario{
		Output:         "combined_video.mp4",
		Rows:           2,
		Cols:           4,
		TileWidth:      512,
		TileHeight:     275,
		Spacing:        20,
		Padding:        30,
		BandHeight:     80,
		FontSize:       40,
		ConditionLabel: "Conditioned Frame",
		Policy:         ExhaustHold,
	}
}

// Validate checks actions geometry.
func (s *ActionsScenario) Validate() error {
	if s.Root == "" {
		return errors.New("actions: root directory is required")
	}
	if s.Rows <= 0 || s.Cols <= 0 {
		return errors.New("actions: rows and cols must be positive")
	}
	if s.TileWidth <= 0 || s.TileHeight <= 0 {
		return errors.New("actions: tile size must be positive")
	}
	return validatePolicy("actions", s.Policy)
}

// RasterizeScenario drives the PDF to PNG conversion utility.
type RasterizeScenario struct {
	Dir string `toml:"dir"`
	DPI int    `toml:"dpi"`
}

// DefaultRasterizeScenario mirrors pdftopng: page 1 at 300 DPI.
func DefaultRasterizeScenario() RasterizeScenario {
	return RasterizeScenario{DPI: 300}
}

// Validate checks rasterize settings.
func (s *RasterizeScenario) Validate() error {
	if s.Dir == "" {
		return errors.New("rasterize: directory is required")
	}
	if s.DPI <= 0 {
		return errors.New("rasterize: dpi must be positive")
	}
	return nil
}

// ScenarioFile is the TOML override document: one optional table per
// scenario. Callers wire the pointers to their default-initialized scenario
// structs before decoding, so absent tables and absent keys leave defaults
// untouched.
type ScenarioFile struct {
	Grid      *GridScenario      `toml:"grid"`
	Aggregate *AggregateScenario `toml:"aggregate"`
	Compare   *CompareScenario   `toml:"compare"`
	Actions   *ActionsScenario   `toml:"actions"`
	Rasterize *RasterizeScenario `toml:"rasterize"`
}

// ApplyScenarioFile decodes a TOML override file into sf. Present keys
// overwrite the pointed-to scenario fields in place.
func ApplyScenarioFile(path string, sf *ScenarioFile) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario file: %w", err)
	}
	if err := toml.Unmarshal(data, sf); err != nil {
		return fmt.Errorf("parse scenario file %q: %w", path, err)
	}
	return nil
}

func validatePolicy(scenario string, p ExhaustPolicy) error {
	switch p {
	case ExhaustHold, ExhaustLoop:
		return nil
	}
	return fmt.Errorf("%s: invalid policy %q (use 'hold' or 'loop')", scenario, p)
}
