package pipeline

import (
	"image"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/display"
	"github.com/knightnemo/vid2world/internal/frame"
	"github.com/knightnemo/vid2world/internal/logging"
	"github.com/knightnemo/vid2world/internal/naming"
)

// BuildActions resolves the action-conditioned grid: the shared conditioned
// frame (frame 0 of the first clip) on the left, the eight action clips in a
// rows x cols grid beside it, every tile captioned below, all on white. The
// roster is fixed, so a missing clip fails the whole build.
func BuildActions(cfg *config.Config, log *logging.Logger, s config.ActionsScenario) (*Plan, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	paths, err := ActionClips(s.Root)
	if err != nil {
		return nil, err
	}
	log.Debug("Action roster complete: %d clips under %s", len(paths), s.Root)

	infos := make([]clipInfo, len(paths))
	for i, path := range paths {
		if infos[i], err = probeClip(path); err != nil {
			return nil, err
		}
	}
	actions := naming.Actions()

	face := frame.LoadFace(cfg.FontPaths, float64(s.FontSize))
	bands := make([]*image.RGBA, len(actions))
	for i, a := range actions {
		bands[i] = frame.Band(a.Label, s.TileWidth, s.BandHeight, bgWhite, bgBlack, face)
	}
	condBand := frame.Band(s.ConditionLabel, s.TileWidth, s.BandHeight, bgWhite, bgBlack, face)

	cellH := s.TileHeight + s.BandHeight
	gridW := s.Cols*s.TileWidth + (s.Cols-1)*s.Spacing
	gridH := s.Rows*cellH + (s.Rows-1)*s.Spacing

	p := &Plan{
		Name:       "actions",
		Output:     joinOutput(s.Root, s.Output),
		Width:      2*s.Padding + s.TileWidth + s.Spacing + gridW,
		Height:     2*s.Padding + gridH,
		Background: bgWhite,
	}

	tile := func(img *image.RGBA) *image.RGBA {
		return frame.Fit(img, s.TileWidth, s.TileHeight)
	}

	// Slot 0 holds the conditioned frame, taken from the first clip and
	// frozen for the whole run.
	first := infos[0]
	p.Sources = append(p.Sources, newStillSource(
		newClipSource(first.path, first.width, first.height, s.Policy, tile)))
	p.Rows = append(p.Rows, display.SourceRow{
		Slot:       0,
		Path:       first.path,
		Label:      s.ConditionLabel,
		Resolution: first.res,
		Frames:     1,
	})
	for i, ci := range infos {
		p.Sources = append(p.Sources, newClipSource(ci.path, ci.width, ci.height, s.Policy, tile))
		p.Rows = append(p.Rows, display.SourceRow{
			Slot:       i + 1,
			Path:       ci.path,
			Label:      actions[i].Label,
			Resolution: ci.res,
			Frames:     ci.frames,
		})
	}

	p.Compose = func(tiles []*image.RGBA) *image.RGBA {
		cond := frame.StackV(bgWhite, 0, tiles[0], condBand)

		rows := make([]*image.RGBA, s.Rows)
		for r := 0; r < s.Rows; r++ {
			cells := make([]*image.RGBA, 0, s.Cols)
			for c := 0; c < s.Cols; c++ {
				i := r*s.Cols + c
				if i+1 >= len(tiles) {
					break
				}
				cells = append(cells, frame.StackV(bgWhite, 0, tiles[i+1], bands[i]))
			}
			rows[r] = frame.StackH(bgWhite, s.Spacing, cells...)
		}

		body := frame.StackH(bgWhite, s.Spacing, cond, frame.StackV(bgWhite, s.Spacing, rows...))
		return frame.PadTo(body, p.Width, p.Height, bgWhite)
	}

	if p.Frames, err = planLength(infos); err != nil {
		return nil, err
	}
	p.FPS = planFPS(infos)
	return p, nil
}
