package pipeline

import (
	"image"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/display"
	"github.com/knightnemo/vid2world/internal/frame"
	"github.com/knightnemo/vid2world/internal/logging"
)

// BuildAggregate resolves the labeled two-row composite: every ground-truth
// clip on the top row, every prediction on the bottom row, a label column on
// the left, all on black. Pairs whose clips cannot be probed are skipped with
// a warning.
func BuildAggregate(cfg *config.Config, log *logging.Logger, s config.AggregateScenario) (*Plan, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	pairs, err := PairDirs(s.Root)
	if err != nil {
		return nil, err
	}

	var gts, preds []clipInfo
	for _, pair := range pairs {
		gt, err := probeClip(pair.GT)
		if err != nil {
			log.Warn("Skipping pair: %v", err)
			continue
		}
		pred, err := probeClip(pair.Pred)
		if err != nil {
			log.Warn("Skipping pair: %v", err)
			continue
		}
		gts = append(gts, gt)
		preds = append(preds, pred)
	}
	if len(gts) == 0 {
		return nil, ErrNoSources
	}
	n := len(gts)

	face := frame.LoadFace(cfg.FontPaths, float64(s.FontSize))
	gtBand := frame.Band(s.GTLabel, s.LabelWidth, s.TileHeight, bgBlack, bgWhite, face)
	predBand := frame.Band(s.PredLabel, s.LabelWidth, s.TileHeight, bgBlack, bgWhite, face)

	width := s.LabelWidth + s.Spacing + n*s.TileWidth + (n-1)*s.Spacing
	height := 2*s.TileHeight + 3*s.Spacing
	if s.PadWidescreen {
		width, height = padTo16x9(width, height)
	}

	p := &Plan{
		Name:       "aggregate",
		Output:     joinOutput(s.Root, s.Output),
		Width:      width,
		Height:     height,
		Background: bgBlack,
	}

	tile := func(img *image.RGBA) *image.RGBA {
		return frame.Fit(img, s.TileWidth, s.TileHeight)
	}
	for i, ci := range gts {
		p.Sources = append(p.Sources, newClipSource(ci.path, ci.width, ci.height, s.Policy, tile))
		p.Rows = append(p.Rows, display.SourceRow{Slot: i, Path: ci.path, Label: "GT", Resolution: ci.res, Frames: ci.frames})
	}
	for i, ci := range preds {
		p.Sources = append(p.Sources, newClipSource(ci.path, ci.width, ci.height, s.Policy, tile))
		p.Rows = append(p.Rows, display.SourceRow{Slot: n + i, Path: ci.path, Label: "Pred", Resolution: ci.res, Frames: ci.frames})
	}

	p.Compose = func(tiles []*image.RGBA) *image.RGBA {
		top := append([]*image.RGBA{gtBand}, tiles[:n]...)
		bottom := append([]*image.RGBA{predBand}, tiles[n:]...)
		body := frame.StackV(bgBlack, s.Spacing,
			frame.StackH(bgBlack, s.Spacing, top...),
			frame.StackH(bgBlack, s.Spacing, bottom...))
		return frame.PadTo(body, width, height, bgBlack)
	}

	all := append(append([]clipInfo(nil), gts...), preds...)
	if p.Frames, err = planLength(all); err != nil {
		return nil, err
	}
	p.FPS = planFPS(all)
	return p, nil
}

// padTo16x9 grows one dimension so the canvas is at least 16:9, for embeds
// that letterbox anything narrower.
func padTo16x9(w, h int) (int, int) {
	if w*9 >= h*16 {
		return w, (w*9 + 15) / 16
	}
	return (h*16 + 8) / 9, h
}
