package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestVideoFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b_ours.mp4"))
	touch(t, filepath.Join(dir, "a_gt.MP4"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "nested.mp4"))

	got, err := VideoFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a_gt.MP4"),
		filepath.Join(dir, "b_ours.mp4"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("VideoFiles = %v, want %v", got, want)
	}
}

func TestGridClips(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"run_b", "run_a", "run_c", "run_d", "run_e"} {
		touch(t, filepath.Join(root, "csgo", d, "pred_video.mp4"))
	}
	for _, d := range []string{"ep2", "ep1"} {
		touch(t, filepath.Join(root, "appendix", d, "pred_video.mp4"))
	}

	csgo, appendix, err := GridClips(root, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(csgo) != 4 {
		t.Errorf("csgo count = %d, want 4 (capped)", len(csgo))
	}
	if !strings.Contains(csgo[0], "run_a") {
		t.Errorf("csgo[0] = %q, want sorted first (run_a)", csgo[0])
	}
	if len(appendix) != 2 || !strings.Contains(appendix[0], "ep1") {
		t.Errorf("appendix = %v, want sorted [ep1 ep2]", appendix)
	}
}

// Four csgo and eight appendix clips fill a 4x4 grid with blanks at the
// middle-row centers.
func TestGridSlots_Layout(t *testing.T) {
	csgo := []string{"c0", "c1", "c2", "c3"}
	appendix := []string{"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7"}

	got := GridSlots(csgo, appendix, 4, 4)
	want := []string{
		"a0", "a1", "a2", "a3",
		"c0", "", "", "c1",
		"c2", "", "", "c3",
		"a4", "a5", "a6", "a7",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GridSlots = %v, want %v", got, want)
	}
}

func TestGridSlots_ShortInputs(t *testing.T) {
	got := GridSlots([]string{"c0"}, []string{"a0", "a1", "a2", "a3"}, 4, 4)
	want := []string{
		"a0", "a1", "a2", "a3",
		"c0", "", "", "",
		"", "", "", "",
		"", "", "", "",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GridSlots = %v, want %v", got, want)
	}
}

func TestPairDirs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "ep1", "gt_video.mp4"))
	touch(t, filepath.Join(root, "ep1", "pred_video.mp4"))
	touch(t, filepath.Join(root, "ep2", "gt_video.mp4"))
	touch(t, filepath.Join(root, "ep2", "pred_video.mp4"))
	// Prediction without ground truth: not a pair.
	touch(t, filepath.Join(root, "ep3", "pred_video.mp4"))
	// Previous output must not be rediscovered as input.
	touch(t, filepath.Join(root, "combined", "gt_video.mp4"))
	touch(t, filepath.Join(root, "combined", "pred_video.mp4"))

	pairs, err := PairDirs(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Fatalf("found %d pairs, want 2: %v", len(pairs), pairs)
	}
	if !strings.Contains(pairs[0].GT, "ep1") || !strings.Contains(pairs[1].GT, "ep2") {
		t.Errorf("pairs not sorted by directory: %v", pairs)
	}
	for _, p := range pairs {
		if strings.Contains(p.GT, "combined") {
			t.Errorf("combined output rediscovered as input: %v", p)
		}
	}
}

func TestCompareDirs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "level2", "x_gt.mp4"))
	touch(t, filepath.Join(root, "level1", "x_gt.mp4"))
	touch(t, filepath.Join(root, "comparison", "old.mp4"))
	touch(t, filepath.Join(root, "readme.txt"))

	dirs, err := CompareDirs(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(root, "level1"),
		filepath.Join(root, "level2"),
	}
	if !reflect.DeepEqual(dirs, want) {
		t.Errorf("CompareDirs = %v, want %v", dirs, want)
	}
}

func TestActionClips_Complete(t *testing.T) {
	root := t.TempDir()
	for _, key := range []string{"w", "a", "s", "d", "up", "down", "l", "r"} {
		touch(t, filepath.Join(root, "pred_video_"+key+".mp4"))
	}

	paths, err := ActionClips(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 8 {
		t.Fatalf("got %d paths, want 8", len(paths))
	}
	if !strings.HasSuffix(paths[0], "pred_video_w.mp4") {
		t.Errorf("paths[0] = %q, want the forward clip first", paths[0])
	}
	if !strings.HasSuffix(paths[7], "pred_video_r.mp4") {
		t.Errorf("paths[7] = %q, want the look-right clip last", paths[7])
	}
}

func TestActionClips_MissingFails(t *testing.T) {
	root := t.TempDir()
	for _, key := range []string{"w", "a", "s", "d", "up", "down"} {
		touch(t, filepath.Join(root, "pred_video_"+key+".mp4"))
	}

	_, err := ActionClips(root)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
	for _, name := range []string{"pred_video_l.mp4", "pred_video_r.mp4"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name missing clip %s", err, name)
		}
	}
}
