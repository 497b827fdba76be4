package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knightnemo/vid2world/internal/naming"
)

// Supported clip extensions (lowercase, with leading dot).
var videoExtensions = map[string]bool{
	".mp4": true,
	".avi": true,
	".mov": true,
	".mkv": true,
}

// VideoFiles returns the clips directly inside dir (no recursion), sorted
// lexicographically.
func VideoFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if videoExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// GridClips collects the showcase grid inputs under root: prediction clips
// from root/csgo/*/pred_video.mp4 (capped at csgoCount) and from
// root/appendix/*/pred_video.mp4. Both lists are sorted so the slot
// assignment is deterministic.
func GridClips(root string, csgoCount int) (csgo, appendix []string, err error) {
	csgo, err = filepath.Glob(filepath.Join(root, "csgo", "*", "pred_video.mp4"))
	if err != nil {
		return nil, nil, err
	}
	appendix, err = filepath.Glob(filepath.Join(root, "appendix", "*", "pred_video.mp4"))
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(csgo)
	sort.Strings(appendix)
	if csgoCount >= 0 && len(csgo) > csgoCount {
		csgo = csgo[:csgoCount]
	}
	return csgo, appendix, nil
}

// GridSlots arranges the grid inputs into a rows x cols slot list, row-major,
// "" marking a blank slot. Appendix clips fill the first and last rows; each
// middle row gets one csgo clip in its first and last column with the middle
// columns left blank.
func GridSlots(csgo, appendix []string, rows, cols int) []string {
	slots := make([]string, 0, rows*cols)

	take := func(list []string, n int) ([]string, []string) {
		if n > len(list) {
			n = len(list)
		}
		return list[:n], list[n:]
	}

	var row []string
	row, appendix = take(appendix, cols)
	slots = append(slots, padRow(row, cols)...)

	for r := 1; r < rows-1; r++ {
		var edge []string
		edge, csgo = take(csgo, 2)
		row = make([]string, cols)
		if len(edge) > 0 {
			row[0] = edge[0]
		}
		if len(edge) > 1 {
			row[cols-1] = edge[1]
		}
		slots = append(slots, row...)
	}

	if rows > 1 {
		row, _ = take(appendix, cols)
		slots = append(slots, padRow(row, cols)...)
	}
	return slots
}

func padRow(row []string, cols int) []string {
	for len(row) < cols {
		row = append(row, "")
	}
	return row
}

// Pair is one gt/prediction clip pair discovered for the aggregate scenario.
type Pair struct {
	GT   string
	Pred string
}

// PairDirs walks root and collects every directory holding both gt_video.mp4
// and pred_video.mp4, skipping previous output under "combined". Results are
// sorted by directory path.
func PairDirs(root string) ([]Pair, error) {
	var pairs []Pair
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.EqualFold(d.Name(), "combined") {
			return filepath.SkipDir
		}
		gt := filepath.Join(path, "gt_video.mp4")
		pred := filepath.Join(path, "pred_video.mp4")
		if fileExists(gt) && fileExists(pred) {
			pairs = append(pairs, Pair{GT: gt, Pred: pred})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].GT < pairs[j].GT })
	return pairs, nil
}

// CompareDirs returns the immediate subdirectories of root that hold method
// comparison clips, excluding the "comparison" output directory.
func CompareDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || strings.EqualFold(e.Name(), "comparison") {
			continue
		}
		dirs = append(dirs, filepath.Join(root, e.Name()))
	}
	sort.Strings(dirs)
	return dirs, nil
}

// ActionClips resolves the full action roster under root. Every action clip
// is required; any missing file fails with ErrSourceNotFound naming all
// absent clips. The returned paths are in roster (grid) order.
func ActionClips(root string) ([]string, error) {
	var paths []string
	var missing []string
	for _, a := range naming.Actions() {
		p := filepath.Join(root, naming.ActionFile(a.Key))
		if !fileExists(p) {
			missing = append(missing, naming.ActionFile(a.Key))
			continue
		}
		paths = append(paths, p)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, strings.Join(missing, ", "))
	}
	return paths, nil
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
