// Package pipeline orchestrates composite builds: clip discovery, slot
// resolution into a Plan, and the frame loop that decodes every slot, composes
// one output frame, and feeds the encoder.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/display"
	"github.com/knightnemo/vid2world/internal/frame"
	"github.com/knightnemo/vid2world/internal/logging"
	"github.com/knightnemo/vid2world/internal/media"
)

// Run executes one plan: opens the encoder, pulls one frame per source per
// output frame, composes, and writes. A failed run removes its partial
// output. The returned stats are valid even on error.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, p *Plan) (RunStats, error) {
	var stats RunStats
	defer closeSources(p.Sources)

	if p.Frames <= 0 || len(p.Sources) == 0 {
		return stats, fmt.Errorf("%s: empty plan", p.Name)
	}

	// libx264 with 4:2:0 output needs even dimensions.
	evenW := p.Width + p.Width%2
	evenH := p.Height + p.Height%2

	log.Info("%s: %d slots -> %s (%dx%d, %d frames, %s)",
		p.Name, len(p.Sources), filepath.Base(p.Output), evenW, evenH, p.Frames, display.FormatFPS(p.FPS))
	if cfg.Verbose || cfg.DryRun {
		display.RenderSources(os.Stdout, p.Rows)
	}

	if cfg.DryRun {
		log.Success("[DRY] Would encode %s", p.Output)
		return stats, nil
	}

	if err := os.MkdirAll(filepath.Dir(p.Output), 0o755); err != nil {
		return stats, fmt.Errorf("create output directory: %w", err)
	}

	start := time.Now()
	w, err := media.NewWriter(p.Output, evenW, evenH, p.FPS)
	if err != nil {
		return stats, err
	}

	bar := newProgress(p.Frames, p.Name)
	tiles := make([]*image.RGBA, len(p.Sources))
	for i := 0; i < p.Frames; i++ {
		if ctx.Err() != nil {
			abort(w, p.Output)
			return stats, ctx.Err()
		}
		for j, src := range p.Sources {
			img, err := src.Next()
			if err != nil {
				abort(w, p.Output)
				return stats, err
			}
			tiles[j] = img
		}
		composite := frame.PadToEven(p.Compose(tiles), p.Background)
		if err := w.Write(composite); err != nil {
			abort(w, p.Output)
			return stats, err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	stats.Frames = w.Frames()
	if err := w.Close(); err != nil {
		os.Remove(p.Output)
		return stats, err
	}

	stats.Elapsed = time.Since(start)
	if fi, err := os.Stat(p.Output); err == nil {
		stats.OutputBytes = fi.Size()
	}
	log.Success("Encoded %d frames in %s (%s)",
		stats.Frames, display.FormatDuration(stats.Elapsed), display.FormatBytes(stats.OutputBytes))
	return stats, nil
}

// RunBatch executes plans sequentially with per-plan isolation: one failing
// directory never stops the rest of the batch.
func RunBatch(ctx context.Context, cfg *config.Config, log *logging.Logger, plans []*Plan) BatchStats {
	stats := BatchStats{Total: len(plans)}
	for i, p := range plans {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		log.Info("[%d/%d] %s", i+1, stats.Total, p.Name)
		if _, err := Run(ctx, cfg, log, p); err != nil {
			log.Error("%s failed: %v", p.Name, err)
			stats.Failed++
			continue
		}
		stats.Done++
	}
	log.Info("Done: %d built, %d failed", stats.Done, stats.Failed)
	return stats
}

func abort(w *media.Writer, output string) {
	_ = w.Close()
	os.Remove(output)
}

func newProgress(total int, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(isatty.IsTerminal(os.Stderr.Fd())),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
