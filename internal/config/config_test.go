package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Policy != ExhaustHold {
		t.Errorf("default policy = %q, want hold", cfg.Policy)
	}
	if len(cfg.FontPaths) == 0 {
		t.Error("default config has no font candidates")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad policy", func(c *Config) { c.Policy = "freeze" }},
		{"bad color mode", func(c *Config) { c.ColorMode = "rainbow" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted invalid config")
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ExhaustPolicy
		wantErr bool
	}{
		{"hold", ExhaustHold, false},
		{"loop", ExhaustLoop, false},
		{" Loop ", ExhaustLoop, false},
		{"HOLD", ExhaustHold, false},
		{"freeze", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/data/clips/", "/data/clips"},
		{"/data/clips", "/data/clips"},
		{"clips///", "clips"},
		{"/", "/"},
	}
	for _, tt := range tests {
		if got := NormalizeDirArg(tt.in); got != tt.want {
			t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCropFor(t *testing.T) {
	if c := CropFor(PresetCSGO); c.Width != 512 || c.Height != 275 {
		t.Errorf("csgo crop = %dx%d, want 512x275", c.Width, c.Height)
	}
	if c := CropFor(PresetRT1); c.Width != 400 || c.Height != 320 {
		t.Errorf("rt1 crop = %dx%d, want 400x320", c.Width, c.Height)
	}
}

func TestDefaultScenarios_ValidateWithRoot(t *testing.T) {
	grid := DefaultGridScenario()
	grid.Root = "/x"
	if err := grid.Validate(); err != nil {
		t.Errorf("grid: %v", err)
	}
	if grid.Policy != ExhaustLoop {
		t.Errorf("grid default policy = %q, want loop", grid.Policy)
	}

	agg := DefaultAggregateScenario()
	agg.Root = "/x"
	if err := agg.Validate(); err != nil {
		t.Errorf("aggregate: %v", err)
	}

	cmp := DefaultCompareScenario()
	cmp.Root = "/x"
	if err := cmp.Validate(); err != nil {
		t.Errorf("compare: %v", err)
	}

	act := DefaultActionsScenario()
	act.Root = "/x"
	if err := act.Validate(); err != nil {
		t.Errorf("actions: %v", err)
	}

	ras := DefaultRasterizeScenario()
	ras.Dir = "/x"
	if err := ras.Validate(); err != nil {
		t.Errorf("rasterize: %v", err)
	}
}

func TestScenarioValidate_MissingRoot(t *testing.T) {
	grid := DefaultGridScenario()
	if err := grid.Validate(); err == nil {
		t.Error("grid without root validated")
	}
}

// Present TOML keys overwrite defaults; absent keys keep them.
func TestApplyScenarioFile_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.toml")
	doc := `
[grid]
tile_width = 640
policy = "hold"

[compare]
spacing = 10
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	grid := DefaultGridScenario()
	cmp := DefaultCompareScenario()
	agg := DefaultAggregateScenario()
	sf := ScenarioFile{Grid: &grid, Compare: &cmp, Aggregate: &agg}
	if err := ApplyScenarioFile(path, &sf); err != nil {
		t.Fatal(err)
	}

	if grid.TileWidth != 640 {
		t.Errorf("grid.TileWidth = %d, want 640", grid.TileWidth)
	}
	if grid.Policy != ExhaustHold {
		t.Errorf("grid.Policy = %q, want hold", grid.Policy)
	}
	if grid.TileHeight != 320 {
		t.Errorf("grid.TileHeight = %d, want default 320", grid.TileHeight)
	}
	if cmp.Spacing != 10 {
		t.Errorf("compare.Spacing = %d, want 10", cmp.Spacing)
	}
	if cmp.BandHeight != 50 {
		t.Errorf("compare.BandHeight = %d, want default 50", cmp.BandHeight)
	}
	if agg.LabelWidth != 250 {
		t.Errorf("aggregate.LabelWidth = %d, want untouched default 250", agg.LabelWidth)
	}
}

func TestApplyScenarioFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[grid\nrows="), 0o644); err != nil {
		t.Fatal(err)
	}
	grid := DefaultGridScenario()
	if err := ApplyScenarioFile(path, &ScenarioFile{Grid: &grid}); err == nil {
		t.Error("malformed TOML accepted")
	}
}

func TestApplyScenarioFile_Missing(t *testing.T) {
	grid := DefaultGridScenario()
	if err := ApplyScenarioFile(filepath.Join(t.TempDir(), "absent.toml"), &ScenarioFile{Grid: &grid}); err == nil {
		t.Error("missing file accepted")
	}
}
