package pipeline

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/display"
	"github.com/knightnemo/vid2world/internal/frame"
	"github.com/knightnemo/vid2world/internal/logging"
)

// BuildGrid resolves the showcase grid: appendix clips on the outer rows,
// csgo clips on the middle-row edges, the remaining slots blank. Clips that
// cannot be probed degrade to blank slots with a warning rather than failing
// the whole grid.
func BuildGrid(cfg *config.Config, log *logging.Logger, s config.GridScenario) (*Plan, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	csgo, appendix, err := GridClips(s.Root, s.CSGOCount)
	if err != nil {
		return nil, err
	}
	if len(csgo)+len(appendix) == 0 {
		return nil, ErrNoSources
	}
	slots := GridSlots(csgo, appendix, s.Rows, s.Cols)

	layout := frame.Layout{
		Rows:       s.Rows,
		Cols:       s.Cols,
		TileW:      s.TileWidth,
		TileH:      s.TileHeight,
		Background: bgBlack,
	}

	p := &Plan{
		Name:       "grid",
		Output:     joinOutput(s.Root, s.Output),
		Width:      layout.Width(),
		Height:     layout.Height(),
		Background: bgBlack,
		Compose:    layout.Assemble,
	}

	var infos []clipInfo
	for i, path := range slots {
		if path == "" {
			p.Sources = append(p.Sources, newBlankSource(s.TileWidth, s.TileHeight, bgBlack))
			p.Rows = append(p.Rows, display.SourceRow{Slot: i})
			continue
		}

		ci, err := probeClip(path)
		if err != nil {
			log.Warn("Skipping unreadable clip, slot %d stays blank: %v", i, err)
			p.Sources = append(p.Sources, newBlankSource(s.TileWidth, s.TileHeight, bgBlack))
			p.Rows = append(p.Rows, display.SourceRow{Slot: i})
			continue
		}
		infos = append(infos, ci)

		p.Sources = append(p.Sources, newClipSource(path, ci.width, ci.height, s.Policy, gridTransform(path, s)))
		p.Rows = append(p.Rows, display.SourceRow{
			Slot:       i,
			Path:       path,
			Label:      gridKind(path),
			Resolution: ci.res,
			Frames:     ci.frames,
		})
	}

	if p.Frames, err = planLength(infos); err != nil {
		return nil, err
	}
	p.FPS = planFPS(infos)
	return p, nil
}

// gridTransform crops a clip with its per-kind preset and resizes the result
// to the uniform tile size.
func gridTransform(path string, s config.GridScenario) func(*image.RGBA) *image.RGBA {
	crop := config.CropFor(config.PresetRT1)
	if gridKind(path) == "csgo" {
		crop = config.CropFor(config.PresetCSGO)
	}
	return func(img *image.RGBA) *image.RGBA {
		return frame.Resize(frame.CropRect(img, crop.Width, crop.Height), s.TileWidth, s.TileHeight)
	}
}

func gridKind(path string) string {
	if strings.Contains(filepath.ToSlash(path), "csgo") {
		return "csgo"
	}
	return "appendix"
}
