package pipeline

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/display"
	"github.com/knightnemo/vid2world/internal/frame"
	"github.com/knightnemo/vid2world/internal/logging"
	"github.com/knightnemo/vid2world/internal/naming"
)

// BuildCompare resolves one comparison strip per subdirectory of the root:
// each clip becomes a column with its method label in a white band above and
// a matching white margin below, columns ordered ground truth, ours, then
// baselines. Returns one plan per directory; directories fail independently
// at run time.
func BuildCompare(cfg *config.Config, log *logging.Logger, s config.CompareScenario) ([]*Plan, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	dirs, err := CompareDirs(s.Root)
	if err != nil {
		return nil, err
	}

	outputDir := joinOutput(s.Root, s.OutputDir)
	var plans []*Plan
	for _, dir := range dirs {
		p, err := buildCompareDir(cfg, log, s, dir, outputDir)
		if err != nil {
			log.Warn("Skipping %s: %v", dir, err)
			continue
		}
		plans = append(plans, p)
	}
	if len(plans) == 0 {
		return nil, ErrNoSources
	}
	return plans, nil
}

func buildCompareDir(cfg *config.Config, log *logging.Logger, s config.CompareScenario, dir, outputDir string) (*Plan, error) {
	files, err := VideoFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSources
	}
	naming.SortByMethod(files)

	var infos []clipInfo
	for _, f := range files {
		ci, err := probeClip(f)
		if err != nil {
			log.Warn("Skipping unreadable clip: %v", err)
			continue
		}
		infos = append(infos, ci)
	}
	if len(infos) == 0 {
		return nil, ErrNoSources
	}
	n := len(infos)

	face := frame.LoadFace(cfg.FontPaths, float64(s.FontSize))
	topBands := make([]*image.RGBA, n)
	for i, ci := range infos {
		topBands[i] = frame.Band(naming.MethodLabel(ci.path), s.TileWidth, s.BandHeight, bgWhite, bgBlack, face)
	}
	bottomBand := frame.Band("", s.TileWidth, s.BandHeight, bgWhite, bgBlack, face)

	p := &Plan{
		Name:       filepath.Base(dir),
		Output:     filepath.Join(outputDir, fmt.Sprintf("%s_comparison.mp4", filepath.Base(dir))),
		Width:      n*s.TileWidth + (n-1)*s.Spacing,
		Height:     s.TileHeight + 2*s.BandHeight,
		Background: bgWhite,
	}

	tile := func(img *image.RGBA) *image.RGBA {
		return frame.Fit(img, s.TileWidth, s.TileHeight)
	}
	for i, ci := range infos {
		p.Sources = append(p.Sources, newClipSource(ci.path, ci.width, ci.height, s.Policy, tile))
		p.Rows = append(p.Rows, display.SourceRow{
			Slot:       i,
			Path:       ci.path,
			Label:      naming.MethodLabel(ci.path),
			Resolution: ci.res,
			Frames:     ci.frames,
		})
	}

	p.Compose = func(tiles []*image.RGBA) *image.RGBA {
		cols := make([]*image.RGBA, n)
		for i, t := range tiles {
			cols[i] = frame.StackV(bgWhite, 0, topBands[i], t, bottomBand)
		}
		return frame.StackH(bgWhite, s.Spacing, cols...)
	}

	if p.Frames, err = planLength(infos); err != nil {
		return nil, err
	}
	p.FPS = planFPS(infos)
	return p, nil
}
