// Package pdf converts presentation figures from PDF to PNG via pdftoppm
// (poppler-utils): first page only, fixed DPI, one PNG next to each PDF.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/knightnemo/vid2world/internal/logging"
)

// ErrPdftoppmNotFound means poppler-utils is not installed.
var ErrPdftoppmNotFound = errors.New("pdftoppm not found on PATH")

// Stats counts one rasterize batch.
type Stats struct {
	Total  int
	Done   int
	Failed int
}

// Discover returns the PDF files directly inside dir, sorted.
func Discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// RasterizeDir converts every PDF in dir to <name>.png at the given DPI.
// Files fail independently; one broken PDF never stops the batch.
func RasterizeDir(ctx context.Context, log *logging.Logger, dir string, dpi int, dryRun bool) (Stats, error) {
	var stats Stats

	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return stats, ErrPdftoppmNotFound
	}

	files, err := Discover(dir)
	if err != nil {
		return stats, err
	}
	stats.Total = len(files)
	if stats.Total == 0 {
		log.Warn("No PDF files found in %s", dir)
		return stats, nil
	}
	log.Info("Found %d PDF files", stats.Total)

	for i, pdf := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		log.Info("[%d/%d] %s", i+1, stats.Total, filepath.Base(pdf))

		if dryRun {
			log.Success("[DRY] Would rasterize at %d dpi", dpi)
			stats.Done++
			continue
		}
		if err := rasterize(ctx, pdf, dpi); err != nil {
			log.Error("%v", err)
			stats.Failed++
			continue
		}
		log.Success("-> %s.png", strings.TrimSuffix(filepath.Base(pdf), ".pdf"))
		stats.Done++
	}
	return stats, nil
}

// rasterize converts the first page of one PDF. pdftoppm's -singlefile drops
// the page suffix, so the output lands at <base>.png.
func rasterize(ctx context.Context, pdf string, dpi int) error {
	base := strings.TrimSuffix(pdf, filepath.Ext(pdf))
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", "1", "-l", "1",
		"-singlefile",
		pdf, base,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("rasterize %q: %s", filepath.Base(pdf), msg)
	}
	return nil
}
